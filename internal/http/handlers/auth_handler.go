package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"shoply/internal/apperr"
	applog "shoply/internal/log"
	"shoply/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := decode(c, &req); err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "bad_request"})
		return err
	}
	u, tok, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email})
		return err
	}
	applog.Audit(c, "auth.login.success", map[string]any{"email": u.Email})
	return c.JSON(fiber.Map{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"token": tok,
	})
}

// LoginLimitReached renders the 403 envelope carrying the time at which the
// rate-limit window resets. The limiter sets Retry-After before calling this.
func LoginLimitReached(window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reset := time.Now().Add(window)
		if ra := c.GetRespHeader(fiber.HeaderRetryAfter); ra != "" {
			if secs, err := strconv.Atoi(ra); err == nil {
				reset = time.Now().Add(time.Duration(secs) * time.Second)
			}
		}
		applog.Security(c, "rate.login.hit", nil)
		return apperr.New(apperr.Forbidden,
			fmt.Sprintf("Too many failed login attempts, try again at %s", reset.Format("15:04:05")))
	}
}
