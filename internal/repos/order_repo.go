package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"shoply/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

var orderListSpec = ListSpec{
	Table: "orders",
	Columns: []string{
		"id", "product_id", "product_name", "category", "price", "quantity", "unit", "created_at",
	},
	Fields: map[string]bool{
		"product_name": true, "category": true, "price": true, "quantity": true, "created_at": true,
	},
	DefaultSort: "product_name",
}

func (r *OrderRepo) List(p ListParams) ([]domain.Order, error) {
	return List[domain.Order](r.db, orderListSpec, p)
}

func (r *OrderRepo) Count(search string) (int, error) {
	return Count(r.db, orderListSpec, search)
}

func (r *OrderRepo) Get(id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.Get(&o, `
	  SELECT id, product_id, product_name, category, price, quantity, unit, created_at
	  FROM orders
	  WHERE id = ?
	`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) Create(o domain.Order) error {
	_, err := r.db.Exec(`
	  INSERT INTO orders(id, product_id, product_name, category, price, quantity, unit, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, o.ID, o.ProductID, o.ProductName, o.Category, o.Price, o.Quantity, o.Unit)
	return err
}

func (r *OrderRepo) UpdateQuantity(id string, quantity int) error {
	_, err := r.db.Exec(`UPDATE orders SET quantity = ? WHERE id = ?`, quantity, id)
	return err
}

func (r *OrderRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
