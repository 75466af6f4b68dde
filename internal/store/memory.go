package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/coffee-pos/internal/domain/order"
)

// MemoryStore is an in-memory Store for tests and for running the server
// without a database.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]*User           // username -> user
	products map[string]*CatalogProduct // id -> product
	orders   []*order.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]*User),
		products: make(map[string]*CatalogProduct),
	}
}

// PutUser adds or replaces a staff account.
func (m *MemoryStore) PutUser(u User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.Username] = &u
}

// PutProduct adds or replaces a catalog product.
func (m *MemoryStore) PutProduct(p CatalogProduct) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = &p
}

func (m *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[username]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *MemoryStore) ListProducts(ctx context.Context) ([]CatalogProduct, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := make([]CatalogProduct, 0, len(m.products))
	for _, p := range m.products {
		products = append(products, *p)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})
	return products, nil
}

func (m *MemoryStore) GetProduct(ctx context.Context, id string) (*CatalogProduct, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *MemoryStore) PlaceOrder(ctx context.Context, o *order.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Validate the whole order before touching anything. Quantities are
	// summed per product so duplicate lines cannot slip past the stock check.
	wanted := make(map[string]int, len(o.Items))
	for _, item := range o.Items {
		p, ok := m.products[item.ProductID]
		if !ok {
			return ErrNotFound
		}
		wanted[item.ProductID] += item.Quantity
		if wanted[item.ProductID] > p.Stock {
			return ErrInsufficientStock
		}
	}

	for i := range o.Items {
		p := m.products[o.Items[i].ProductID]
		o.Items[i].Name = p.Name
		o.Items[i].PriceAtSale = p.Price
		o.Items[i].CostAtSale = p.CostPrice
		p.Stock -= o.Items[i].Quantity
	}

	stored := *o
	stored.Items = append([]order.Item(nil), o.Items...)
	m.orders = append(m.orders, &stored)
	return nil
}

func (m *MemoryStore) DailySales(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := decimal.Zero
	for _, o := range m.orders {
		if sameDay(o.PlacedAt, day) {
			total = total.Add(o.Total)
		}
	}
	return total, nil
}

func (m *MemoryStore) DailyProfit(ctx context.Context, day time.Time) (ProfitReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	report := ProfitReport{TotalRevenue: decimal.Zero, TotalCost: decimal.Zero}
	for _, o := range m.orders {
		if !sameDay(o.PlacedAt, day) {
			continue
		}
		for _, item := range o.Items {
			qty := decimal.NewFromInt(int64(item.Quantity))
			report.TotalRevenue = report.TotalRevenue.Add(item.PriceAtSale.Mul(qty))
			report.TotalCost = report.TotalCost.Add(item.CostAtSale.Mul(qty))
		}
	}
	return report, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
