package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/example/coffee-pos/internal/domain/order"
)

// PostgresStore implements Store on PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// ConnectPostgres establishes a connection to PostgreSQL.
func ConnectPostgres(connStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// NewPostgresStore wraps db and ensures the schema exists.
func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	s := &PostgresStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			cost_price NUMERIC(10,2) NOT NULL DEFAULT 0,
			stock_quantity INTEGER NOT NULL DEFAULT 0,
			image_url TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			cashier TEXT NOT NULL DEFAULT '',
			total_amount NUMERIC(10,2) NOT NULL,
			order_date TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id TEXT NOT NULL REFERENCES orders(id),
			product_id TEXT NOT NULL REFERENCES products(id),
			quantity INTEGER NOT NULL,
			price_at_sale NUMERIC(10,2) NOT NULL,
			cost_at_sale NUMERIC(10,2) NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_order_date ON orders(order_date)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id)`,
	}

	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash FROM users WHERE username = $1",
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) ListProducts(ctx context.Context) ([]CatalogProduct, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, price, cost_price, stock_quantity, image_url FROM products ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []CatalogProduct
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*CatalogProduct, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, price, cost_price, stock_quantity, image_url FROM products WHERE id = $1", id)

	p, err := scanProduct(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProduct(scan func(...any) error) (CatalogProduct, error) {
	var (
		p     CatalogProduct
		price string
		cost  string
	)
	if err := scan(&p.ID, &p.Name, &price, &cost, &p.Stock, &p.ImageURL); err != nil {
		return CatalogProduct{}, err
	}

	var err error
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return CatalogProduct{}, fmt.Errorf("parse price: %w", err)
	}
	if p.CostPrice, err = decimal.NewFromString(cost); err != nil {
		return CatalogProduct{}, fmt.Errorf("parse cost price: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) PlaceOrder(ctx context.Context, o *order.Order) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range o.Items {
		item := &o.Items[i]

		var (
			name  string
			price string
			cost  string
			stock int
		)
		err := tx.QueryRowContext(ctx,
			"SELECT name, price, cost_price, stock_quantity FROM products WHERE id = $1 FOR UPDATE",
			item.ProductID,
		).Scan(&name, &price, &cost, &stock)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if item.Quantity > stock {
			return ErrInsufficientStock
		}

		item.Name = name
		if item.PriceAtSale, err = decimal.NewFromString(price); err != nil {
			return fmt.Errorf("parse price: %w", err)
		}
		if item.CostAtSale, err = decimal.NewFromString(cost); err != nil {
			return fmt.Errorf("parse cost price: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			"UPDATE products SET stock_quantity = stock_quantity - $1 WHERE id = $2",
			item.Quantity, item.ProductID,
		); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO orders (id, cashier, total_amount, order_date) VALUES ($1, $2, $3, $4)",
		o.ID, o.Cashier, o.Total.StringFixed(2), o.PlacedAt,
	); err != nil {
		return err
	}

	for _, item := range o.Items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, price_at_sale, cost_at_sale)
			 VALUES ($1, $2, $3, $4, $5)`,
			o.ID, item.ProductID, item.Quantity,
			item.PriceAtSale.StringFixed(2), item.CostAtSale.StringFixed(2),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *PostgresStore) DailySales(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	var total string
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE order_date::date = $1::date",
		day.Format("2006-01-02"),
	).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(total)
}

func (s *PostgresStore) DailyProfit(ctx context.Context, day time.Time) (ProfitReport, error) {
	var revenue, cost string
	err := s.db.QueryRowContext(ctx,
		`SELECT
			COALESCE(SUM(oi.quantity * oi.price_at_sale), 0),
			COALESCE(SUM(oi.quantity * oi.cost_at_sale), 0)
		 FROM orders o
		 JOIN order_items oi ON o.id = oi.order_id
		 WHERE o.order_date::date = $1::date`,
		day.Format("2006-01-02"),
	).Scan(&revenue, &cost)
	if err != nil {
		return ProfitReport{}, err
	}

	report := ProfitReport{}
	if report.TotalRevenue, err = decimal.NewFromString(revenue); err != nil {
		return ProfitReport{}, err
	}
	if report.TotalCost, err = decimal.NewFromString(cost); err != nil {
		return ProfitReport{}, err
	}
	return report, nil
}
