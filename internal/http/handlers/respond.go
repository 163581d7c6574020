package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shoply/internal/apperr"
	applog "shoply/internal/log"
)

var bodyValidator = validator.New()

// errorEnvelope is the JSON shape of every error response.
type errorEnvelope struct {
	StatusCode  int    `json:"statusCode"`
	Error       string `json:"error"`
	Description string `json:"description"`
	Message     string `json:"message"`
}

// ErrorHandler is the central responder: handlers return typed errors and
// this renders them. Anything untyped is logged and masked as a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			ae = apperr.New(apperr.Kind{Status: fe.Code, Code: "REQUEST_ERROR", Description: fe.Message}, fe.Message)
		} else {
			applog.Error(c, "server.error", err, nil)
			ae = apperr.New(apperr.Internal, "Something went wrong")
		}
	}
	return c.Status(ae.Kind.Status).JSON(errorEnvelope{
		StatusCode:  ae.Kind.Status,
		Error:       ae.Kind.Code,
		Description: ae.Kind.Description,
		Message:     ae.Message,
	})
}

// decode parses the JSON body into dst and runs its validation tags.
func decode(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return apperr.New(apperr.Validation, "malformed request body")
	}
	if err := bodyValidator.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return apperr.New(apperr.Validation, fmt.Sprintf("field %s failed on rule %s", e.Field(), e.Tag()))
		}
		return apperr.New(apperr.Validation, "invalid request body")
	}
	return nil
}
