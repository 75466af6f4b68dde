package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/coffee-pos/internal/auth"
	"github.com/example/coffee-pos/internal/config"
	"github.com/example/coffee-pos/internal/kafka"
	"github.com/example/coffee-pos/internal/server"
	"github.com/example/coffee-pos/internal/store"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("[API] JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[API] JWT_SECRET must be at least 32 characters long")
	}

	log.Println("[API] ========================================")
	log.Println("[API] Coffee Shop POS - API Server")
	log.Println("[API] ========================================")
	log.Printf("[API] Listen: %s", cfg.HTTPAddr)

	st, cleanup := buildStore(cfg)
	defer cleanup()

	var publisher server.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		publisher = producer
		log.Printf("[API] Kafka: %v topic %s", cfg.KafkaBrokers, cfg.KafkaTopic)
	} else {
		log.Println("[API] Kafka disabled, orders will not be published")
	}

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenExpiry)
	handlers := server.NewHandlers(st, jwtService, publisher)
	router := server.NewRouter(handlers, jwtService)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		log.Printf("[API] Server started on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("[API] Server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[API] Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	srv.Shutdown(shutdownCtx)
}

// buildStore connects to PostgreSQL when DATABASE_URL is set, otherwise runs
// an in-memory store seeded with the demo catalog for development.
func buildStore(cfg config.Config) (store.Store, func()) {
	if cfg.DatabaseURL == "" {
		log.Println("[API] DATABASE_URL not set, using seeded in-memory store")
		mem := store.NewMemoryStore()
		if err := store.SeedDemo(mem, cfg.SeedUsername, cfg.SeedPassword); err != nil {
			log.Fatalf("[API] Failed to seed demo data: %v", err)
		}
		log.Printf("[API] Demo login: %s", cfg.SeedUsername)
		return mem, func() {}
	}

	db, err := store.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[API] Failed to connect to PostgreSQL: %v", err)
	}
	pg, err := store.NewPostgresStore(db)
	if err != nil {
		log.Fatalf("[API] Failed to prepare PostgreSQL schema: %v", err)
	}
	log.Println("[API] Connected to PostgreSQL")
	return pg, func() { db.Close() }
}
