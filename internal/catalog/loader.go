package catalog

import (
	"context"
	"log"

	"github.com/example/coffee-pos/internal/domain/product"
)

// API is the read side of the product catalog.
type API interface {
	FetchProducts(ctx context.Context) ([]product.Product, error)
}

// Loader produces the product list the register works from. Products are
// sanitized at this boundary, and a failed fetch falls back to the built-in
// demo catalog so the register always has data to operate on.
type Loader struct {
	api API
}

func NewLoader(api API) *Loader {
	return &Loader{api: api}
}

// Load fetches the catalog. fromFallback reports whether the demo catalog was
// substituted because the remote fetch failed.
func (l *Loader) Load(ctx context.Context) (products []product.Product, fromFallback bool) {
	fetched, err := l.api.FetchProducts(ctx)
	if err != nil {
		log.Printf("[POS] Catalog fetch failed, using demo products: %v", err)
		return DemoCatalog(), true
	}
	return product.Sanitize(fetched), false
}
