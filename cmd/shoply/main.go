package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"shoply/internal/config"
	"shoply/internal/http/handlers"
	applog "shoply/internal/log"
	"shoply/internal/repos"
)

func main() {
	cfg := config.Load()
	applog.Setup(cfg.LogLevel, cfg.LogFile)

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	deps := handlers.NewDeps(db, cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())

	// ---------- Authentication (login throttled: 5 attempts / 30 min) ----------
	app.Post("/authentication/login", limiter.New(limiter.Config{
		Max:                    5,
		Expiration:             30 * time.Minute,
		SkipSuccessfulRequests: true,
		LimitReached:           handlers.LoginLimitReached(30 * time.Minute),
	}), deps.AuthHandler.Login)

	requireUser := handlers.RequireUser(deps.Auth)

	// ---------- Users ----------
	users := app.Group("/users")
	users.Post("/", deps.UserHandler.Create)
	users.Get("/", requireUser, deps.UserHandler.List)
	users.Get("/:id", requireUser, deps.UserHandler.Detail)
	users.Put("/:id", requireUser, deps.UserHandler.Update)
	users.Post("/:id/change-password", requireUser, deps.UserHandler.ChangePassword)
	users.Delete("/:id", requireUser, deps.UserHandler.Delete)

	// ---------- Shop ----------
	shop := app.Group("/shop")
	shop.Get("/", requireUser, deps.ProductHandler.List)
	shop.Post("/", deps.ProductHandler.Create)
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

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	log.Fatal(app.Listen(":" + cfg.Port))
}
