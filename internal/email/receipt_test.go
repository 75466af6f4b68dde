package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/example/coffee-pos/internal/domain/order"
)

func TestBuildReceiptBody(t *testing.T) {
	placed := order.Placed{
		OrderID: "ord-123",
		Cashier: "barista",
		Items: []order.PlacedItem{
			{ProductID: "cappuccino", Name: "Cappuccino", Quantity: 2, Price: 4.50},
			{ProductID: "croissant", Name: "Croissant", Quantity: 1, Price: 3.00},
		},
		Total:    13.20,
		PlacedAt: time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC),
	}

	body := BuildReceiptBody(placed)

	assert.Contains(t, body, "Order ord-123")
	assert.Contains(t, body, "Served by barista")
	assert.Contains(t, body, "Cappuccino")
	assert.Contains(t, body, "9.00")
	assert.Contains(t, body, "Croissant")
	assert.Contains(t, body, "13.20")
}

func TestBuildReceiptBody_FallsBackToProductID(t *testing.T) {
	placed := order.Placed{
		OrderID: "ord-456",
		Items:   []order.PlacedItem{{ProductID: "espresso", Quantity: 1, Price: 4.50}},
		Total:   4.95,
	}

	body := BuildReceiptBody(placed)

	assert.Contains(t, body, "espresso")
}
