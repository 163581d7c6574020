package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"shoply/internal/config"
	"shoply/internal/http/handlers"
	"shoply/internal/repos"
)

// newTestApp assembles the app the way main does, over an in-memory store.
// The login limiter gets a small window so throttling is testable.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)

	cfg := config.Config{DBDSN: ":memory:", JWTSecret: "test-secret", Port: "0"}
	deps := handlers.NewDeps(db, cfg)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(requestid.New())

	app.Post("/authentication/login", limiter.New(limiter.Config{
		Max:                    3,
		Expiration:             time.Minute,
		SkipSuccessfulRequests: true,
		LimitReached:           handlers.LoginLimitReached(time.Minute),
	}), deps.AuthHandler.Login)

	requireUser := handlers.RequireUser(deps.Auth)

	users := app.Group("/users")
	users.Post("/", deps.UserHandler.Create)
	users.Get("/", requireUser, deps.UserHandler.List)
	users.Get("/:id", requireUser, deps.UserHandler.Detail)
	users.Put("/:id", requireUser, deps.UserHandler.Update)
	users.Post("/:id/change-password", requireUser, deps.UserHandler.ChangePassword)
	users.Delete("/:id", requireUser, deps.UserHandler.Delete)

	shop := app.Group("/shop")
	shop.Get("/products", requireUser, deps.ProductHandler.List)
	shop.Post("/products", deps.ProductHandler.Create)
	shop.Get("/products/:id", requireUser, deps.ProductHandler.Detail)
	shop.Put("/products/:id", requireUser, deps.ProductHandler.Update)
	shop.Delete("/products/:id", requireUser, deps.ProductHandler.Delete)
	shop.Post("/orders", requireUser, deps.OrderHandler.Place)
	shop.Get("/orders", requireUser, deps.OrderHandler.List)
	shop.Get("/orders/:id", requireUser, deps.OrderHandler.Detail)
	shop.Put("/orders/:id", requireUser, deps.OrderHandler.Update)
	shop.Delete("/orders/:id", requireUser, deps.OrderHandler.Delete)

	return app, db
}

// doJSON sends a JSON request and decodes the JSON response body.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	out := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

// loginToken authenticates the seeded demo account.
func loginToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, body := doJSON(t, app, "POST", "/authentication/login", "", map[string]any{
		"email":    "admin@shoply.test",
		"password": "Passw0rd!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tok, _ := body["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}
