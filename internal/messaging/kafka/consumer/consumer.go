package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"steez-storefront/internal/email"
	"steez-storefront/internal/messaging/kafka/producer"
)

// ConsumeMessages drains order events and notifies the shop operator. Events
// that cannot be handled are logged and retried on the next fetch; unknown
// event types are committed and skipped.
func ConsumeMessages(ctx context.Context, reader *kafka.Reader, emailSvc email.Service, notifyAddr string) {
	log.Println("[CONSUMER] Started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[CONSUMER] Error fetching message: %v", err)
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		if eventType == producer.EventOrderPlaced {
			if err := handleOrderPlaced(ctx, msg.Value, emailSvc, notifyAddr); err != nil {
				log.Printf("[CONSUMER] Error handling ORDER_PLACED: %v", err)
			} else {
				if err := reader.CommitMessages(ctx, msg); err != nil {
					log.Printf("[CONSUMER] Error committing message: %v", err)
				}
			}
		} else {
			// Skip unknown event types
			_ = reader.CommitMessages(ctx, msg)
		}
	}
}

func handleOrderPlaced(ctx context.Context, payload []byte, emailSvc email.Service, notifyAddr string) error {
	var event producer.OrderPlacedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}

	summary := fmt.Sprintf(
		"items: %d\nsubtotal: %.2f\nshipping: %.2f\ntotal: %.2f\npayment: %s\nplaced: %s",
		event.ItemCount,
		event.Subtotal,
		event.Shipping,
		event.Total,
		event.PaymentMethod,
		event.PlacedAt.Format("2006-01-02 15:04:05 MST"),
	)

	if err := emailSvc.SendOrderNotification(ctx, notifyAddr, summary); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Order notification sent (total %.2f)", event.Total)
	return nil
}
