package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"shoply/internal/apperr"
	applog "shoply/internal/log"
	"shoply/internal/services"
)

// RequireUser rejects requests without a valid bearer token before the
// resource handlers run.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if !ok || tok == "" {
			applog.Security(c, "auth.token.missing", nil)
			return apperr.New(apperr.Unauthorized, "missing bearer token")
		}
		claims, err := auth.ParseToken(tok)
		if err != nil {
			applog.Security(c, "auth.token.invalid", map[string]any{"err": err.Error()})
			return apperr.New(apperr.Unauthorized, "invalid or expired token")
		}
		c.Locals("user_id", claims.UserID)
		return c.Next()
	}
}
