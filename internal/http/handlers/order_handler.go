package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shoply/internal/apperr"
	applog "shoply/internal/log"
	"shoply/internal/services"
	"shoply/internal/validate"
)

type OrderHandler struct {
	Order *services.OrderService
}

type placeOrderRequest struct {
	ID       string `json:"id" validate:"required"`
	Quantity *int   `json:"quantity" validate:"required,gt=0"`
}

type updateOrderRequest struct {
	Quantity *int `json:"quantity" validate:"required,gt=0"`
}

func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var req placeOrderRequest
	if err := decode(c, &req); err != nil {
		return err
	}
	o, err := h.Order.Place(req.ID, *req.Quantity)
	if err != nil {
		applog.Security(c, "order.place.fail", map[string]any{"product_id": req.ID, "error": err.Error()})
		return err
	}
	applog.Audit(c, "order.place", map[string]any{"order_id": o.ID, "product_id": o.ProductID, "quantity": o.Quantity})
	return c.JSON(fiber.Map{
		"info":           "ORDER SUCCESS",
		"order_id":       o.ID,
		"product_id":     o.ProductID,
		"product_name":   o.ProductName,
		"category":       o.Category,
		"price":          o.Price,
		"order_quantity": o.Quantity,
		"unit":           o.Unit,
	})
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	p, err := parseListParams(c)
	if err != nil {
		return err
	}
	page, err := h.Order.ListOrders(p)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *OrderHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return apperr.New(apperr.Validation, "invalid order id")
	}
	o, err := h.Order.GetOrder(id)
	if err != nil {
		return err
	}
	return c.JSON(o)
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return apperr.New(apperr.Validation, "invalid order id")
	}
	var req updateOrderRequest
	if err := decode(c, &req); err != nil {
		return err
	}
	o, err := h.Order.UpdateQuantity(id, *req.Quantity)
	if err != nil {
		return err
	}
	applog.Audit(c, "order.update", map[string]any{"order_id": o.ID, "quantity": o.Quantity})
	return c.JSON(fiber.Map{
		"info":           "SUCCESS UPDATE ORDER",
		"order_id":       o.ID,
		"order_quantity": o.Quantity,
	})
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return apperr.New(apperr.Validation, "invalid order id")
	}
	if err := h.Order.DeleteOrder(id); err != nil {
		return err
	}
	applog.Audit(c, "order.delete", map[string]any{"order_id": id})
	return c.JSON(fiber.Map{
		"info": "ORDER SUCCESSFULLY DELETED",
		"id":   id,
	})
}
