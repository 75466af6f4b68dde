package order

import (
	"time"

	"github.com/shopspring/decimal"
)

const EventOrderPlaced = "OrderPlaced"

// Line is the {product id, quantity} pair a checkout submits. The server
// resolves prices itself; the client never dictates them per line.
type Line struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Item is a stored order line. Price and cost are captured at sale time so
// later catalog edits don't rewrite history.
type Item struct {
	ProductID   string
	Name        string
	Quantity    int
	PriceAtSale decimal.Decimal
	CostAtSale  decimal.Decimal
}

// Order is a write-once snapshot of a checked-out cart.
type Order struct {
	ID       string
	Cashier  string
	Items    []Item
	Total    decimal.Decimal
	PlacedAt time.Time
}

// Placed is the event published after an order is stored.
type Placed struct {
	OrderID  string       `json:"order_id"`
	Cashier  string       `json:"cashier"`
	Items    []PlacedItem `json:"items"`
	Total    float64      `json:"total"`
	PlacedAt time.Time    `json:"placed_at"`
}

type PlacedItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// ToPlaced converts a stored order into its published event form.
func (o *Order) ToPlaced() Placed {
	items := make([]PlacedItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = PlacedItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.PriceAtSale.InexactFloat64(),
		}
	}
	return Placed{
		OrderID:  o.ID,
		Cashier:  o.Cashier,
		Items:    items,
		Total:    o.Total.InexactFloat64(),
		PlacedAt: o.PlacedAt,
	}
}
