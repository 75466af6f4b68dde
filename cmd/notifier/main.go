package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/coffee-pos/internal/config"
	"github.com/example/coffee-pos/internal/email"
	"github.com/example/coffee-pos/internal/kafka"
	"github.com/example/coffee-pos/internal/notification"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal("[Notifier] KAFKA_BROKERS environment variable is required")
	}
	consumerGroup := "receipt-notifier"

	log.Println("[Notifier] ========================================")
	log.Println("[Notifier] Coffee Shop POS - Receipt Notifier")
	log.Println("[Notifier] ========================================")
	log.Printf("[Notifier] Kafka: %v", cfg.KafkaBrokers)
	log.Printf("[Notifier] Topic: %s", cfg.KafkaTopic)
	log.Printf("[Notifier] Group: %s", consumerGroup)
	log.Printf("[Notifier] SMTP: %s:%s", cfg.SMTPHost, cfg.SMTPPort)
	log.Printf("[Notifier] Receipts to: %s", cfg.ReceiptTo)

	emailSvc := email.NewService(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailFrom)
	handler := notification.NewHandler(emailSvc, cfg.ReceiptTo)

	consumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, consumerGroup)
	defer consumer.Close()

	go func() {
		log.Println("[Notifier] Starting event consumer...")
		if err := consumer.Consume(ctx, handler.HandleEvent); err != nil {
			if ctx.Err() == nil {
				log.Printf("[Notifier] Consumer error: %v", err)
			}
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[Notifier] Shutting down...")
	cancel()
}
