package services

import (
	"github.com/google/uuid"

	"shoply/internal/apperr"
	"shoply/internal/domain"
	"shoply/internal/repos"
)

type OrderService struct {
	Orders *repos.OrderRepo
	Prods  *repos.ProductRepo
}

func NewOrderService(orders *repos.OrderRepo, prods *repos.ProductRepo) *OrderService {
	return &OrderService{Orders: orders, Prods: prods}
}

// Place runs the order flow: lookup, stock validation, atomic decrement,
// snapshot insert. A rejected order never mutates stock.
func (s *OrderService) Place(productID string, quantity int) (*domain.Order, error) {
	if quantity <= 0 {
		return nil, apperr.New(apperr.Validation, "quantity must be a positive integer")
	}
	p, err := s.Prods.Get(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.New(apperr.Unprocessable, "Unknown product")
	}
	if quantity > p.Stock {
		return nil, apperr.New(apperr.Unprocessable, "order exceeds stock quantity, reduce order quantity")
	}

	// The conditional decrement re-checks stock in the same statement, so a
	// concurrent order cannot slip between the check above and the write.
	if err := s.Prods.DecrementStock(productID, quantity); err != nil {
		if err == repos.ErrInsufficientStock {
			return nil, apperr.New(apperr.Unprocessable, "order exceeds stock quantity, reduce order quantity")
		}
		return nil, err
	}

	o := domain.Order{
		ID:          uuid.NewString(),
		ProductID:   p.ID,
		ProductName: p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Quantity:    quantity,
		Unit:        p.Unit,
	}
	if err := s.Orders.Create(o); err != nil {
		return nil, apperr.New(apperr.Unprocessable, "Failed to order product")
	}
	return &o, nil
}

func (s *OrderService) ListOrders(p repos.ListParams) (Page[domain.Order], error) {
	return listPage(s.Orders.Count, s.Orders.List, p)
}

func (s *OrderService) GetOrder(id string) (*domain.Order, error) {
	o, err := s.Orders.Get(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.New(apperr.Unprocessable, "Unknown order")
	}
	return o, nil
}

// UpdateQuantity changes the ordered quantity and applies the stock delta
// atomically: an increase must fit the product's current stock, a decrease
// returns units to stock.
func (s *OrderService) UpdateQuantity(id string, quantity int) (*domain.Order, error) {
	if quantity <= 0 {
		return nil, apperr.New(apperr.Validation, "quantity must be a positive integer")
	}
	o, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}

	switch delta := quantity - o.Quantity; {
	case delta > 0:
		if err := s.Prods.DecrementStock(o.ProductID, delta); err != nil {
			if err == repos.ErrInsufficientStock {
				return nil, apperr.New(apperr.Unprocessable, "order exceeds stock quantity, reduce order quantity")
			}
			return nil, err
		}
	case delta < 0:
		if err := s.Prods.IncrementStock(o.ProductID, -delta); err != nil {
			return nil, err
		}
	}

	if err := s.Orders.UpdateQuantity(id, quantity); err != nil {
		return nil, apperr.New(apperr.Unprocessable, "Failed to update order")
	}
	o.Quantity = quantity
	return o, nil
}

// DeleteOrder removes the historical record; stock is not restored.
func (s *OrderService) DeleteOrder(id string) error {
	ok, err := s.Orders.Delete(id)
	if err != nil || !ok {
		return apperr.New(apperr.Unprocessable, "Failed to delete order")
	}
	return nil
}
