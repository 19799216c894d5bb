package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	EventOrderPlaced = "ORDER_PLACED"
	aggregateOrder   = "order"
)

// OrderPlacedEvent is published after the backend accepted an order. It feeds
// the operator-notification consumer; it carries no card or address data.
type OrderPlacedEvent struct {
	UserID        string    `json:"user_id,omitempty"`
	ItemCount     int       `json:"item_count"`
	Subtotal      float64   `json:"subtotal"`
	Shipping      float64   `json:"shipping"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	PlacedAt      time.Time `json:"placed_at"`
}

type Publisher interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

func NewPublisher(writer *kafka.Writer) Publisher {
	return &kafkaPublisher{writer: writer}
}

func (p *kafkaPublisher) PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventOrderPlaced)},
			{Key: "aggregate_type", Value: []byte(aggregateOrder)},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

// NewNoopPublisher is used when no broker is configured; checkout proceeds
// without events.
func NewNoopPublisher() Publisher {
	return &noopPublisher{}
}

type noopPublisher struct{}

func (p *noopPublisher) PublishOrderPlaced(_ context.Context, _ OrderPlacedEvent) error {
	return nil
}
