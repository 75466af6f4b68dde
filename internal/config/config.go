package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config carries the settings for all POS binaries. Each binary reads the
// fields it needs.
type Config struct {
	// Register (client)
	APIBaseURL string
	TaxRate    decimal.Decimal

	// API server
	HTTPAddr     string
	DatabaseURL  string
	JWTSecret    string
	TokenExpiry  time.Duration
	SeedUsername string
	SeedPassword string

	// Events
	KafkaBrokers []string // empty disables publishing
	KafkaTopic   string

	// Notifier
	SMTPHost  string
	SMTPPort  string
	EmailFrom string
	ReceiptTo string
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		TaxRate:    getEnvDecimal("TAX_RATE", "0.10"),

		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		TokenExpiry:  getEnvDuration("TOKEN_EXPIRY", 8*time.Hour),
		SeedUsername: getEnv("SEED_USERNAME", "admin"),
		SeedPassword: getEnv("SEED_PASSWORD", "admin-password"),

		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "pos-events"),

		SMTPHost:  getEnv("SMTP_HOST", "localhost"),
		SMTPPort:  getEnv("SMTP_PORT", "25"),
		EmailFrom: getEnv("EMAIL_FROM", "register@coffee.example"),
		ReceiptTo: getEnv("RECEIPT_TO", "receipts@coffee.example"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDecimal(key, defaultValue string) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return decimal.RequireFromString(defaultValue)
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
