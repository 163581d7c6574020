package repos

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"shoply/internal/domain"
)

// ErrInsufficientStock reports a conditional decrement that found fewer units
// than requested.
var ErrInsufficientStock = fmt.Errorf("insufficient stock")

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

var productListSpec = ListSpec{
	Table: "products",
	Columns: []string{
		"id", "name", "category", "price", "stock", "unit", "description",
		"created_at", "COALESCE(updated_at,'') AS updated_at",
	},
	Fields: map[string]bool{
		"name": true, "category": true, "price": true, "stock": true, "unit": true,
	},
	DefaultSort: "name",
}

func (r *ProductRepo) List(p ListParams) ([]domain.Product, error) {
	return List[domain.Product](r.db, productListSpec, p)
}

func (r *ProductRepo) Count(search string) (int, error) {
	return Count(r.db, productListSpec, search)
}

func (r *ProductRepo) Get(id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, name, category, price, stock, unit, description,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE id = ?
	`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByName matches the product name case-insensitively (uniqueness guard).
func (r *ProductRepo) GetByName(name string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, name, category, price, stock, unit, description,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE LOWER(name) = LOWER(?)
	`, name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Create(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id, name, category, price, stock, unit, description, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, p.ID, p.Name, p.Category, p.Price, p.Stock, p.Unit, p.Description)
	return err
}

func (r *ProductRepo) Update(p domain.Product) error {
	_, err := r.db.Exec(`
	  UPDATE products
	  SET name = ?, category = ?, price = ?, stock = ?, unit = ?, description = ?,
	      updated_at = CURRENT_TIMESTAMP
	  WHERE id = ?
	`, p.Name, p.Category, p.Price, p.Stock, p.Unit, p.Description, p.ID)
	return err
}

func (r *ProductRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// DecrementStock atomically subtracts "by" units if enough stock exists.
// Concurrent order placements against the same product cannot oversell:
// the condition and the write are a single statement.
func (r *ProductRepo) DecrementStock(id string, by int) error {
	res, err := r.db.Exec(`
	  UPDATE products
	  SET stock = stock - ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND stock >= ?
	`, by, id, by)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// IncrementStock returns units to stock (order quantity reductions).
func (r *ProductRepo) IncrementStock(id string, by int) error {
	_, err := r.db.Exec(`
	  UPDATE products
	  SET stock = stock + ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ?
	`, by, id)
	return err
}
