package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shoply/internal/apperr"
	applog "shoply/internal/log"
	"shoply/internal/services"
	"shoply/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

type createProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Category    string `json:"category" validate:"omitempty,max=50"`
	Price       string `json:"price" validate:"required,max=12"`
	Stock       *int   `json:"stock" validate:"required,gte=0"`
	Unit        string `json:"unit" validate:"required,min=1,max=10"`
	Description string `json:"desc" validate:"required,min=1,max=150"`
}

type updateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Category    *string `json:"category" validate:"omitempty,max=50"`
	Price       *string `json:"price" validate:"omitempty,max=12"`
	Stock       *int    `json:"stock" validate:"omitempty,gte=0"`
	Unit        *string `json:"unit" validate:"omitempty,min=1,max=10"`
	Description *string `json:"desc" validate:"omitempty,min=1,max=150"`
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	p, err := parseListParams(c)
	if err != nil {
		return err
	}
	page, err := h.Catalog.ListProducts(p)
	if err != nil {
		return err
	}
	applog.Info(c, "catalog.list", map[string]any{"count": page.Count, "page": page.PageNumber})
	return c.JSON(page)
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return apperr.New(apperr.Validation, "invalid product id")
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req createProductRequest
	if err := decode(c, &req); err != nil {
		return err
	}
	price, ok := validate.Price(req.Price)
	if !ok {
		return apperr.New(apperr.Validation, "price must be a non-negative decimal")
	}
	p, err := h.Catalog.CreateProduct(services.ProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       price,
		Stock:       *req.Stock,
		Unit:        req.Unit,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	applog.Audit(c, "product.create", map[string]any{"product_id": p.ID, "name": p.Name})
	return c.JSON(fiber.Map{
		"info":     "INPUT PRODUCT SUCCESSFULLY",
		"id":       p.ID,
		"name":     p.Name,
		"category": p.Category,
		"price":    p.Price,
		"stock":    p.Stock,
		"unit":     p.Unit,
		"desc":     p.Description,
	})
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return apperr.New(apperr.Validation, "invalid product id")
	}
	var req updateProductRequest
	if err := decode(c, &req); err != nil {
		return err
	}
	patch := services.ProductPatch{
		Name:        req.Name,
		Category:    req.Category,
		Stock:       req.Stock,
		Unit:        req.Unit,
		Description: req.Description,
	}
	if req.Price != nil {
		price, ok := validate.Price(*req.Price)
		if !ok {
			return apperr.New(apperr.Validation, "price must be a non-negative decimal")
		}
		patch.Price = &price
	}
	p, err := h.Catalog.UpdateProduct(id, patch)
	if err != nil {
		return err
	}
	applog.Audit(c, "product.update", map[string]any{"product_id": p.ID})
	return c.JSON(fiber.Map{
		"info":       "SUCCESS UPDATE PRODUCT",
		"product_id": p.ID,
		"name":       p.Name,
		"category":   p.Category,
		"price":      p.Price,
		"stock":      p.Stock,
		"unit":       p.Unit,
		"desc":       p.Description,
	})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return apperr.New(apperr.Validation, "invalid product id")
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		return err
	}
	applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{
		"info": "PRODUCT SUCCESSFULLY DELETED",
		"id":   id,
	})
}
