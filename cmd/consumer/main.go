package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	"steez-storefront/internal/email"
	"steez-storefront/internal/messaging/kafka/consumer"
)

func main() {
	_ = godotenv.Load()

	log.Println("[CONSUMER] Starting order-events consumer...")

	notifyAddr := os.Getenv("ORDER_NOTIFY_EMAIL")
	if notifyAddr == "" {
		log.Fatal("ORDER_NOTIFY_EMAIL is not configured")
	}

	emailSvc, err := email.NewResendServiceFromEnv()
	if err != nil {
		log.Printf("[CONSUMER] email disabled: %v", err)
		emailSvc = email.NewNoopService()
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   "order.events",
		GroupID: "storefront-notify-group",
	})
	defer reader.Close()
	log.Println("[CONSUMER] Kafka reader initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, emailSvc, notifyAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
	log.Println("[CONSUMER] Stopped")
}
