package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/coffee-pos/internal/auth"
	"github.com/example/coffee-pos/internal/catalog"
)

// SeedDemo fills a memory store with the demo catalog and a default staff
// account, for running the server without a database. Wholesale cost is
// assumed at 40% of the sale price.
func SeedDemo(m *MemoryStore, username, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	m.PutUser(User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
	})

	costRatio := decimal.RequireFromString("0.4")
	for _, p := range catalog.DemoCatalog() {
		m.PutProduct(CatalogProduct{
			Product:   p,
			CostPrice: p.Price.Mul(costRatio).Round(2),
		})
	}
	return nil
}
