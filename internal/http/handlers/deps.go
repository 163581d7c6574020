package handlers

import (
	"github.com/jmoiron/sqlx"

	"shoply/internal/config"
	"shoply/internal/repos"
	"shoply/internal/services"
)

type Deps struct {
	AuthHandler    *AuthHandler
	ProductHandler *ProductHandler
	OrderHandler   *OrderHandler
	UserHandler    *UserHandler
	Auth           *services.AuthService
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	userRepo := repos.NewUserRepo(db)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret)
	catalogSvc := services.NewCatalogService(prodRepo)
	orderSvc := services.NewOrderService(orderRepo, prodRepo)
	userSvc := services.NewUserService(userRepo)

	return &Deps{
		AuthHandler:    &AuthHandler{Auth: authSvc},
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		OrderHandler:   &OrderHandler{Order: orderSvc},
		UserHandler:    &UserHandler{Users: userSvc},
		Auth:           authSvc,
	}
}
