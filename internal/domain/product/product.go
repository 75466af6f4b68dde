package product

import "github.com/shopspring/decimal"

// Product is a catalog item as served by the POS API. The cart treats it as
// read-only input: price and stock are a snapshot taken at fetch time.
type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Stock    int
	ImageURL string
}

// InStock reports whether at least one unit is available for sale.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// Sanitize enforces the catalog boundary guarantee: every product reaching
// the cart has a non-negative price and stock. Out-of-range values are
// clamped to zero; entries without an id are dropped.
func Sanitize(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID == "" {
			continue
		}
		if p.Price.IsNegative() {
			p.Price = decimal.Zero
		}
		if p.Stock < 0 {
			p.Stock = 0
		}
		out = append(out, p)
	}
	return out
}
