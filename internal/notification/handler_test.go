package notification

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/coffee-pos/internal/domain/order"
)

type fakeSender struct {
	sent []order.Placed
	to   []string
}

func (f *fakeSender) SendReceipt(to string, placed order.Placed) error {
	f.to = append(f.to, to)
	f.sent = append(f.sent, placed)
	return nil
}

func placedEvent(t *testing.T) []byte {
	t.Helper()
	placed := order.Placed{
		OrderID:  "ord-1",
		Cashier:  "barista",
		Items:    []order.PlacedItem{{ProductID: "cappuccino", Name: "Cappuccino", Quantity: 2, Price: 4.50}},
		Total:    9.90,
		PlacedAt: time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC),
	}
	data, err := json.Marshal(placed)
	require.NoError(t, err)
	value, err := json.Marshal(map[string]any{
		"event_type": order.EventOrderPlaced,
		"data":       json.RawMessage(data),
	})
	require.NoError(t, err)
	return value
}

func TestHandler_HandleEvent_OrderPlaced(t *testing.T) {
	sender := &fakeSender{}
	h := NewHandler(sender, "receipts@coffee.example")

	err := h.HandleEvent(context.Background(), []byte("ord-1"), placedEvent(t))

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "receipts@coffee.example", sender.to[0])
	assert.Equal(t, "ord-1", sender.sent[0].OrderID)
	assert.InDelta(t, 9.90, sender.sent[0].Total, 0.001)
}

func TestHandler_HandleEvent_SkipsOtherEvents(t *testing.T) {
	sender := &fakeSender{}
	h := NewHandler(sender, "receipts@coffee.example")

	value, err := json.Marshal(map[string]any{"event_type": "ProductUpdated", "data": map[string]any{}})
	require.NoError(t, err)

	require.NoError(t, h.HandleEvent(context.Background(), nil, value))
	assert.Empty(t, sender.sent)
}

func TestHandler_HandleEvent_BadPayload(t *testing.T) {
	sender := &fakeSender{}
	h := NewHandler(sender, "receipts@coffee.example")

	err := h.HandleEvent(context.Background(), nil, []byte("not json"))

	assert.Error(t, err)
	assert.Empty(t, sender.sent)
}
