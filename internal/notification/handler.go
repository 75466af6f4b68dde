package notification

import (
	"context"
	"encoding/json"
	"log"

	"github.com/example/coffee-pos/internal/domain/order"
	"github.com/example/coffee-pos/internal/kafka"
)

// ReceiptSender delivers a receipt for a placed order.
type ReceiptSender interface {
	SendReceipt(to string, placed order.Placed) error
}

// Handler turns OrderPlaced events into receipt emails.
type Handler struct {
	sender ReceiptSender
	to     string
}

// NewHandler creates a handler that mails receipts to the shop's receipt
// address.
func NewHandler(sender ReceiptSender, to string) *Handler {
	return &Handler{sender: sender, to: to}
}

// HandleEvent processes one event from Kafka. Events other than OrderPlaced
// are skipped.
func (h *Handler) HandleEvent(ctx context.Context, key, value []byte) error {
	var env kafka.Event
	if err := json.Unmarshal(value, &env); err != nil {
		log.Printf("[Notifier] Failed to unmarshal event: %v", err)
		return err
	}

	if env.EventType != order.EventOrderPlaced {
		return nil
	}

	var placed order.Placed
	if err := json.Unmarshal(env.Data, &placed); err != nil {
		log.Printf("[Notifier] Failed to unmarshal OrderPlaced event: %v", err)
		return err
	}

	if err := h.sender.SendReceipt(h.to, placed); err != nil {
		log.Printf("[Notifier] Failed to send receipt for order %s: %v", placed.OrderID, err)
		return err
	}

	log.Printf("[Notifier] Receipt sent for order %s", placed.OrderID)
	return nil
}
