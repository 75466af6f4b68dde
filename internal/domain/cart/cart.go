package cart

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/example/coffee-pos/internal/domain/product"
)

var (
	ErrOutOfStock = errors.New("product is out of stock")
	ErrStockLimit = errors.New("stock limit reached")
	ErrNotInCart  = errors.New("product not in cart")
)

// Line is one product's aggregated quantity within the current order. Name,
// unit price and image are captured when the line is created; catalog changes
// after that do not touch an existing line.
type Line struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	ImageURL  string
	Quantity  int
}

// Cart holds the in-progress order. Lines keep insertion order and are unique
// by product id; every line's quantity is at least 1. The zero value is an
// empty, usable cart, but New keeps call sites uniform.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddItem puts one unit of p in the cart. A new line starts at quantity 1; an
// existing line grows by 1 as long as it stays below p's stock snapshot. Adds
// against zero stock or at the stock ceiling are rejected with the cart
// unchanged.
func (c *Cart) AddItem(p product.Product) error {
	if p.Stock <= 0 {
		return ErrOutOfStock
	}
	if i := c.index(p.ID); i >= 0 {
		if c.lines[i].Quantity >= p.Stock {
			return ErrStockLimit
		}
		c.lines[i].Quantity++
		return nil
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  1,
	})
	return nil
}

// RemoveOneUnit takes one unit off the matching line, deleting the line when
// its quantity would reach zero.
func (c *Cart) RemoveOneUnit(productID string) error {
	i := c.index(productID)
	if i < 0 {
		return ErrNotInCart
	}
	if c.lines[i].Quantity > 1 {
		c.lines[i].Quantity--
		return nil
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return nil
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Units returns the total unit count across all lines.
func (c *Cart) Units() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Quantity returns the quantity held for a product, 0 when absent.
func (c *Cart) Quantity(productID string) int {
	if i := c.index(productID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Total is the subtotal over all lines at their captured unit prices. An
// empty cart totals zero.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// TaxAmount is the tax due on the subtotal at the given rate, rounded to
// cents.
func (c *Cart) TaxAmount(rate decimal.Decimal) decimal.Decimal {
	return c.Total().Mul(rate).Round(2)
}

// GrandTotal is subtotal plus tax, the amount charged at checkout.
func (c *Cart) GrandTotal(rate decimal.Decimal) decimal.Decimal {
	return c.Total().Add(c.TaxAmount(rate))
}

func (c *Cart) index(productID string) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}
