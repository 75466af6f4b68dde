package store

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/coffee-pos/internal/domain/order"
	"github.com/example/coffee-pos/internal/domain/product"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// User is a staff account allowed to run the register.
type User struct {
	ID           string
	Username     string
	PasswordHash string
}

// CatalogProduct is a product row including the wholesale cost. The cost
// never leaves the server; it only feeds the profit report.
type CatalogProduct struct {
	product.Product
	CostPrice decimal.Decimal
}

// ProfitReport is the aggregated revenue/cost for one day.
type ProfitReport struct {
	TotalRevenue decimal.Decimal
	TotalCost    decimal.Decimal
}

// Store is the shop's system of record.
type Store interface {
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	ListProducts(ctx context.Context) ([]CatalogProduct, error)
	GetProduct(ctx context.Context, id string) (*CatalogProduct, error)

	// PlaceOrder stores the order and decrements stock as one transaction.
	// Incoming items carry product id and quantity; the store captures each
	// item's name, price and cost at sale time. An unknown product fails with
	// ErrNotFound, a quantity above stock with ErrInsufficientStock, and in
	// either case nothing is applied.
	PlaceOrder(ctx context.Context, o *order.Order) error

	DailySales(ctx context.Context, day time.Time) (decimal.Decimal, error)
	DailyProfit(ctx context.Context, day time.Time) (ProfitReport, error)
}
