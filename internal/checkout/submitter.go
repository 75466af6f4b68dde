package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/example/coffee-pos/internal/domain/cart"
	"github.com/example/coffee-pos/internal/domain/order"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrInFlight  = errors.New("a checkout is already in progress")
)

// API is the order sink: accepts items plus the computed total, returns
// success or failure only.
type API interface {
	SubmitOrder(ctx context.Context, items []order.Line, total decimal.Decimal) (orderID string, err error)
}

// Receipt summarizes a successfully placed order.
type Receipt struct {
	OrderID    string
	Lines      []cart.Line
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// Submitter sends the current cart to the order sink. At most one submission
// may be in flight at a time; the cart is cleared only after the sink accepts
// the order, and a failed submission leaves it untouched. The submitter never
// retries and never partially applies an order.
type Submitter struct {
	api      API
	inFlight atomic.Bool
}

func NewSubmitter(api API) *Submitter {
	return &Submitter{api: api}
}

// Submit serializes the cart into an order request and sends it once.
func (s *Submitter) Submit(ctx context.Context, c *cart.Cart, taxRate decimal.Decimal) (Receipt, error) {
	if c.IsEmpty() {
		return Receipt{}, ErrEmptyCart
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return Receipt{}, ErrInFlight
	}
	defer s.inFlight.Store(false)

	lines := c.Lines()
	items := make([]order.Line, len(lines))
	for i, l := range lines {
		items[i] = order.Line{ProductID: l.ProductID, Quantity: l.Quantity}
	}

	receipt := Receipt{
		Lines:      lines,
		Subtotal:   c.Total(),
		Tax:        c.TaxAmount(taxRate),
		GrandTotal: c.GrandTotal(taxRate),
	}

	orderID, err := s.api.SubmitOrder(ctx, items, receipt.GrandTotal)
	if err != nil {
		return Receipt{}, fmt.Errorf("submit order: %w", err)
	}

	receipt.OrderID = orderID
	c.Clear()
	return receipt, nil
}
