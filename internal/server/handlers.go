package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/coffee-pos/internal/auth"
	"github.com/example/coffee-pos/internal/domain/order"
	"github.com/example/coffee-pos/internal/kafka"
	"github.com/example/coffee-pos/internal/server/middleware"
	"github.com/example/coffee-pos/internal/store"
)

// EventPublisher is the write side of the event stream. Nil-able: without
// Kafka the server just skips publishing.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// Handlers serves the POS API.
type Handlers struct {
	store     store.Store
	jwt       *auth.JWTService
	publisher EventPublisher
	now       func() time.Time
}

// NewHandlers creates the API handlers. publisher may be nil.
func NewHandlers(st store.Store, jwtService *auth.JWTService, publisher EventPublisher) *Handlers {
	return &Handlers{
		store:     st,
		jwt:       jwtService,
		publisher: publisher,
		now:       time.Now,
	}
}

// ProductResponse is a catalog item as exposed to the register. Wholesale
// cost is deliberately absent.
type ProductResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	ImageURL      string  `json:"image_url"`
}

// GetProducts returns the catalog ordered by name.
func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		respondJSONError(w, "Internal error", http.StatusInternalServerError)
		return
	}

	payload := make([]ProductResponse, len(products))
	for i, p := range products {
		payload[i] = ProductResponse{
			ID:            p.ID,
			Name:          p.Name,
			Price:         p.Price.InexactFloat64(),
			StockQuantity: p.Stock,
			ImageURL:      p.ImageURL,
		}
	}
	respondJSON(w, http.StatusOK, payload)
}

// OrderRequest is the checkout payload: item pairs plus the register's
// computed total.
type OrderRequest struct {
	Items       []order.Line `json:"items"`
	TotalAmount float64      `json:"total_amount"`
}

// OrderResponse acknowledges a stored order.
type OrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// CreateOrder stores a checkout. The whole order succeeds or fails; there is
// no partial acknowledgement.
func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		respondJSONError(w, "Order has no items", http.StatusBadRequest)
		return
	}
	for _, item := range req.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			respondJSONError(w, "Invalid order item", http.StatusBadRequest)
			return
		}
	}

	o := &order.Order{
		ID:       uuid.New().String(),
		Cashier:  middleware.Username(r.Context()),
		Items:    make([]order.Item, len(req.Items)),
		Total:    decimal.NewFromFloat(req.TotalAmount).Round(2),
		PlacedAt: h.now().UTC(),
	}
	for i, item := range req.Items {
		o.Items[i] = order.Item{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	if err := h.store.PlaceOrder(r.Context(), o); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			respondJSONError(w, "Unknown product", http.StatusNotFound)
		case errors.Is(err, store.ErrInsufficientStock):
			respondJSONError(w, "Insufficient stock", http.StatusConflict)
		default:
			respondJSONError(w, "Internal error", http.StatusInternalServerError)
		}
		return
	}

	h.publishOrderPlaced(r.Context(), o)

	log.Printf("[API] Order %s placed by %s, total %s", o.ID, o.Cashier, o.Total.StringFixed(2))
	respondJSON(w, http.StatusCreated, OrderResponse{
		Message: "Order created successfully",
		OrderID: o.ID,
	})
}

// publishOrderPlaced emits the event best-effort; the order stands even if
// the stream is down.
func (h *Handlers) publishOrderPlaced(ctx context.Context, o *order.Order) {
	if h.publisher == nil {
		return
	}
	event, err := kafka.NewEvent(order.EventOrderPlaced, o.ToPlaced())
	if err != nil {
		log.Printf("[API] Failed to build OrderPlaced event for %s: %v", o.ID, err)
		return
	}
	if err := h.publisher.Publish(ctx, o.ID, event); err != nil {
		log.Printf("[API] Failed to publish OrderPlaced for %s: %v", o.ID, err)
	}
}

// DailySalesResponse is the pre-aggregated sales figure for one day.
type DailySalesResponse struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
}

// DailySales reports the sales total for the requested day (today by
// default).
func (h *Handlers) DailySales(w http.ResponseWriter, r *http.Request) {
	day, ok := h.reportDay(w, r)
	if !ok {
		return
	}

	total, err := h.store.DailySales(r.Context(), day)
	if err != nil {
		respondJSONError(w, "Internal error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, DailySalesResponse{
		Date:       day.Format("2006-01-02"),
		TotalSales: total.InexactFloat64(),
	})
}

// DailyProfitResponse is the revenue/cost breakdown for one day.
type DailyProfitResponse struct {
	Date         string  `json:"date"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalCost    float64 `json:"total_cost"`
	TotalProfit  float64 `json:"total_profit"`
}

// DailyProfit reports the profit breakdown for the requested day.
func (h *Handlers) DailyProfit(w http.ResponseWriter, r *http.Request) {
	day, ok := h.reportDay(w, r)
	if !ok {
		return
	}

	report, err := h.store.DailyProfit(r.Context(), day)
	if err != nil {
		respondJSONError(w, "Internal error", http.StatusInternalServerError)
		return
	}

	profit := report.TotalRevenue.Sub(report.TotalCost)
	respondJSON(w, http.StatusOK, DailyProfitResponse{
		Date:         day.Format("2006-01-02"),
		TotalRevenue: report.TotalRevenue.InexactFloat64(),
		TotalCost:    report.TotalCost.InexactFloat64(),
		TotalProfit:  profit.InexactFloat64(),
	})
}

func (h *Handlers) reportDay(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return h.now().UTC(), true
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		respondJSONError(w, "Invalid date, want YYYY-MM-DD", http.StatusBadRequest)
		return time.Time{}, false
	}
	return day, true
}
