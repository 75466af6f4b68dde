package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/coffee-pos/internal/domain/order"
	"github.com/example/coffee-pos/internal/domain/product"
	"github.com/example/coffee-pos/internal/reports"
	"github.com/example/coffee-pos/internal/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Client talks to the coffee-shop POS API. Every authenticated call injects
// the bearer token from the session; the client itself is credential-agnostic
// beyond that.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
}

// New creates a client for the API at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, sess *session.Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		session: sess,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login authenticates against the API and begins the session on success.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login: %s", responseError(resp))
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return fmt.Errorf("login: decode response: %w", err)
	}

	c.session.Begin(lr.Token, lr.Username)
	return nil
}

// Logout tears the session down. Purely local; the token simply expires
// server-side.
func (c *Client) Logout() {
	c.session.End()
}

type productPayload struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	ImageURL      string  `json:"image_url"`
}

// FetchProducts retrieves the product catalog.
func (c *Client) FetchProducts(ctx context.Context) ([]product.Product, error) {
	var payload []productPayload
	if err := c.getJSON(ctx, "/api/products", nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	products := make([]product.Product, len(payload))
	for i, p := range payload {
		products[i] = product.Product{
			ID:       p.ID,
			Name:     p.Name,
			Price:    decimal.NewFromFloat(p.Price),
			Stock:    p.StockQuantity,
			ImageURL: p.ImageURL,
		}
	}
	return products, nil
}

type orderRequest struct {
	Items       []order.Line `json:"items"`
	TotalAmount float64      `json:"total_amount"`
}

type orderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// SubmitOrder sends a checkout to the order sink and returns the order id.
// Success or failure only; there is no partial acknowledgement.
func (c *Client) SubmitOrder(ctx context.Context, items []order.Line, total decimal.Decimal) (string, error) {
	body, err := json.Marshal(orderRequest{Items: items, TotalAmount: total.InexactFloat64()})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrUnauthorized
	}
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("submit order: %s", responseError(resp))
	}

	var or orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return "", fmt.Errorf("submit order: decode response: %w", err)
	}
	return or.OrderID, nil
}

type dailySalesPayload struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
}

// DailySales fetches the sales total for a day (YYYY-MM-DD, empty for today).
func (c *Client) DailySales(ctx context.Context, date string) (reports.DailySales, error) {
	var payload dailySalesPayload
	if err := c.getJSON(ctx, "/api/reports/daily_sales", dateQuery(date), &payload); err != nil {
		return reports.DailySales{}, fmt.Errorf("daily sales: %w", err)
	}
	return reports.DailySales{
		Date:       payload.Date,
		TotalSales: decimal.NewFromFloat(payload.TotalSales),
	}, nil
}

type dailyProfitPayload struct {
	Date         string  `json:"date"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalCost    float64 `json:"total_cost"`
	TotalProfit  float64 `json:"total_profit"`
}

// DailyProfit fetches the revenue/cost breakdown for a day.
func (c *Client) DailyProfit(ctx context.Context, date string) (reports.DailyProfit, error) {
	var payload dailyProfitPayload
	if err := c.getJSON(ctx, "/api/reports/daily_profit", dateQuery(date), &payload); err != nil {
		return reports.DailyProfit{}, fmt.Errorf("daily profit: %w", err)
	}
	return reports.DailyProfit{
		Date:         payload.Date,
		TotalRevenue: decimal.NewFromFloat(payload.TotalRevenue),
		TotalCost:    decimal.NewFromFloat(payload.TotalCost),
		TotalProfit:  decimal.NewFromFloat(payload.TotalProfit),
	}, nil
}

func dateQuery(date string) url.Values {
	if date == "" {
		return nil
	}
	return url.Values{"date": {date}}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return errors.New(responseError(resp))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) authorize(req *http.Request) {
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// responseError digs an {"error": "..."} body out of a failed response,
// falling back to the HTTP status.
func responseError(resp *http.Response) string {
	var payload struct {
		Error string `json:"error"`
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return resp.Status
}
