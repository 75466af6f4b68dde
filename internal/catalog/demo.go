package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/example/coffee-pos/internal/domain/product"
)

// demoItems is the fixed offline catalog. Prices and stock match the shop's
// standard menu.
var demoItems = []struct {
	id    string
	name  string
	price string
	stock int
	image string
}{
	{"cappuccino", "Cappuccino", "4.50", 50, "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?w=400&h=300&fit=crop"},
	{"croissant", "Croissant", "3.00", 30, "https://images.unsplash.com/photo-1555507036-ab794f27d2e9?w=400&h=300&fit=crop"},
	{"espresso", "Espresso", "4.50", 40, "https://images.unsplash.com/photo-1510707577719-ae7c9b788690?w=400&h=300&fit=crop"},
	{"coffee", "Coffee", "2.50", 60, "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400&h=300&fit=crop"},
	{"chocolate", "Chocolate", "2.50", 25, "https://images.unsplash.com/photo-1570913199992-91d07c140e7a?w=400&h=300&fit=crop"},
	{"yagvri-tea", "Yagvri Tea", "3.00", 20, "https://images.unsplash.com/photo-1561047029-3000c68339ca?w=400&h=300&fit=crop"},
	{"peppermint-tea", "Peppermint Tea", "2.00", 35, "https://images.unsplash.com/photo-1563414761752-7c2f8a6c7b7c?w=400&h=300&fit=crop"},
	{"chocolate-cake", "Chocolate Cake", "4.00", 15, "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=400&h=300&fit=crop"},
	{"muffin", "Muffin", "3.50", 20, "https://images.unsplash.com/photo-1576866209830-589e1bfbaa4d?w=400&h=300&fit=crop"},
	{"bagel", "Bagel", "3.50", 25, "https://images.unsplash.com/photo-1551773477-8c3c7e8e1e6e?w=400&h=300&fit=crop"},
	{"sandwich", "Sandwich", "7.50", 20, "https://images.unsplash.com/photo-1528735602780-2552fd46c7af?w=400&h=300&fit=crop"},
	{"salad", "Salad", "9.00", 15, "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400&h=300&fit=crop"},
}

// DemoCatalog returns a fresh copy of the fixed demo product list.
func DemoCatalog() []product.Product {
	products := make([]product.Product, len(demoItems))
	for i, d := range demoItems {
		products[i] = product.Product{
			ID:       d.id,
			Name:     d.name,
			Price:    decimal.RequireFromString(d.price),
			Stock:    d.stock,
			ImageURL: d.image,
		}
	}
	return products
}
