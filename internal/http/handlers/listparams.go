package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shoply/internal/apperr"
	"shoply/internal/repos"
	"shoply/internal/validate"
)

// parseListParams validates pagination query parameters before any query
// runs. Absent values stay zero; the service fills the defaults.
func parseListParams(c *fiber.Ctx) (repos.ListParams, error) {
	p := repos.ListParams{Sort: c.Query("sort"), Search: c.Query("search")}
	if raw := c.Query("page_number"); raw != "" {
		n, ok := validate.PositiveInt(raw)
		if !ok {
			return p, apperr.New(apperr.Validation, "page_number must be a positive integer")
		}
		p.PageNumber = n
	}
	if raw := c.Query("page_size"); raw != "" {
		n, ok := validate.PositiveInt(raw)
		if !ok {
			return p, apperr.New(apperr.Validation, "page_size must be a positive integer")
		}
		p.PageSize = n
	}
	return p, nil
}
