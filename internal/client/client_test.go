package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/coffee-pos/internal/domain/order"
	"github.com/example/coffee-pos/internal/session"
)

func newTestClient(handler http.Handler) (*Client, *session.Session, *httptest.Server) {
	srv := httptest.NewServer(handler)
	sess := session.New()
	return New(srv.URL, sess), sess, srv
}

func TestClient_Login_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "barista", req.Username)
		assert.Equal(t, "espresso-shift-1", req.Password)

		json.NewEncoder(w).Encode(map[string]string{"token": "tok-123", "username": "barista"})
	})
	c, sess, srv := newTestClient(mux)
	defer srv.Close()

	err := c.Login(context.Background(), "barista", "espresso-shift-1")

	require.NoError(t, err)
	assert.True(t, sess.Active())
	assert.Equal(t, "tok-123", sess.Token())
	assert.Equal(t, "barista", sess.Username())
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
	})
	c, sess, srv := newTestClient(mux)
	defer srv.Close()

	err := c.Login(context.Background(), "barista", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, sess.Active())
}

func TestClient_Logout(t *testing.T) {
	c, sess, srv := newTestClient(http.NewServeMux())
	defer srv.Close()
	sess.Begin("tok-123", "barista")

	c.Logout()

	assert.False(t, sess.Active())
}

func TestClient_FetchProducts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "cappuccino", "name": "Cappuccino", "price": 4.5, "stock_quantity": 50, "image_url": "https://img/capp"},
			{"id": "croissant", "name": "Croissant", "price": 3.0, "stock_quantity": 30, "image_url": "https://img/croi"},
		})
	})
	c, sess, srv := newTestClient(mux)
	defer srv.Close()
	sess.Begin("tok-123", "barista")

	products, err := c.FetchProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "cappuccino", products[0].ID)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("4.5")))
	assert.Equal(t, 50, products[0].Stock)
	assert.Equal(t, "https://img/capp", products[0].ImageURL)
}

func TestClient_FetchProducts_Unauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	c, _, srv := newTestClient(mux)
	defer srv.Close()

	_, err := c.FetchProducts(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_SubmitOrder(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		var req struct {
			Items       []order.Line `json:"items"`
			TotalAmount float64      `json:"total_amount"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []order.Line{{ProductID: "cappuccino", Quantity: 2}}, req.Items)
		assert.InDelta(t, 9.90, req.TotalAmount, 0.001)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Order created successfully", "order_id": "ord-1"})
	})
	c, sess, srv := newTestClient(mux)
	defer srv.Close()
	sess.Begin("tok-123", "barista")

	orderID, err := c.SubmitOrder(context.Background(),
		[]order.Line{{ProductID: "cappuccino", Quantity: 2}},
		decimal.RequireFromString("9.90"))

	require.NoError(t, err)
	assert.Equal(t, "ord-1", orderID)
}

func TestClient_SubmitOrder_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "insufficient stock"})
	})
	c, sess, srv := newTestClient(mux)
	defer srv.Close()
	sess.Begin("tok-123", "barista")

	_, err := c.SubmitOrder(context.Background(),
		[]order.Line{{ProductID: "cappuccino", Quantity: 2}},
		decimal.RequireFromString("9.90"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")
}

func TestClient_Reports(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/reports/daily_sales", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-08-31", r.URL.Query().Get("date"))
		json.NewEncoder(w).Encode(map[string]any{"date": "2026-08-31", "total_sales": 125.5})
	})
	mux.HandleFunc("/api/reports/daily_profit", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"date": "2026-08-31", "total_revenue": 125.5, "total_cost": 50.2, "total_profit": 75.3,
		})
	})
	c, sess, srv := newTestClient(mux)
	defer srv.Close()
	sess.Begin("tok-123", "barista")

	sales, err := c.DailySales(context.Background(), "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, "125.50", sales.TotalSales.StringFixed(2))

	profit, err := c.DailyProfit(context.Background(), "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, "75.30", profit.TotalProfit.StringFixed(2))
	assert.Equal(t, "60", profit.Margin().String())
}
