package domain

type Product struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Category    string  `db:"category" json:"category"`
	Price       float64 `db:"price" json:"price"`
	Stock       int     `db:"stock" json:"stock"`
	Unit        string  `db:"unit" json:"unit"`
	Description string  `db:"description" json:"desc"`
	CreatedAt   string  `db:"created_at" json:"-"`
	UpdatedAt   string  `db:"updated_at" json:"-"`
}

// Order is an immutable snapshot of the product at order time; later product
// changes do not show through.
type Order struct {
	ID          string  `db:"id" json:"id"`
	ProductID   string  `db:"product_id" json:"product_id"`
	ProductName string  `db:"product_name" json:"product_name"`
	Category    string  `db:"category" json:"category"`
	Price       float64 `db:"price" json:"price"`
	Quantity    int     `db:"quantity" json:"quantity"`
	Unit        string  `db:"unit" json:"unit"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
}
