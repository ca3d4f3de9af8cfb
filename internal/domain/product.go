package domain

import "github.com/shopspring/decimal"

// Product is a single catalog record. The catalog is fixed for the lifetime
// of the process, so products are never mutated after construction.
type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Category    string          `json:"category"`
	Colors      []string        `json:"colors"`
	Sizes       []string        `json:"sizes"`
	Stock       *int64          `json:"stock"`
	Featured    bool            `json:"featured"`
}

// InStock reports whether the product can be offered for sale. A nil Stock
// means availability is unknown and the product is treated as available.
func (p Product) InStock() bool {
	return p.Stock == nil || *p.Stock > 0
}
