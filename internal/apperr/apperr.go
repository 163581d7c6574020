package apperr

import "net/http"

// Kind identifies one entry of the error taxonomy. Every kind carries the
// HTTP status and the fixed error/description pair used in responses.
type Kind struct {
	Status      int
	Code        string
	Description string
}

var (
	Validation         = Kind{http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request parameters"}
	Unauthorized       = Kind{http.StatusUnauthorized, "UNAUTHORIZED_ERROR", "Unauthorized"}
	InvalidCredentials = Kind{http.StatusUnauthorized, "INVALID_CREDENTIALS_ERROR", "Invalid credentials"}
	Forbidden          = Kind{http.StatusForbidden, "FORBIDDEN_ERROR", "Access forbidden"}
	NameTaken          = Kind{http.StatusUnprocessableEntity, "NAME_ALREADY_TAKEN", "Name already taken"}
	EmailTaken         = Kind{http.StatusUnprocessableEntity, "EMAIL_ALREADY_TAKEN", "Email already taken"}
	Unprocessable      = Kind{http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY", "Unprocessable entity"}
	Internal           = Kind{http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error"}
)

// Error is a typed application error. Handlers forward these to the central
// responder, which renders the {statusCode, error, description, message}
// envelope.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(k Kind, message string) *Error {
	return &Error{Kind: k, Message: message}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, k Kind) bool {
	ae, ok := err.(*Error)
	return ok && ae.Kind.Code == k.Code
}
