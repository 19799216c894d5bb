package consumer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steez-storefront/internal/messaging/kafka/producer"
)

type fakeEmailService struct {
	to      string
	summary string
	err     error
}

func (f *fakeEmailService) SendOrderNotification(_ context.Context, to, summary string) error {
	f.to = to
	f.summary = summary
	return f.err
}

func TestHandleOrderPlaced(t *testing.T) {
	placedAt := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)
	payload, err := json.Marshal(producer.OrderPlacedEvent{
		UserID:        "u-1",
		ItemCount:     3,
		Subtotal:      99.99,
		Shipping:      5,
		Total:         104.99,
		PaymentMethod: "card",
		PlacedAt:      placedAt,
	})
	require.NoError(t, err)

	svc := &fakeEmailService{}
	require.NoError(t, handleOrderPlaced(context.Background(), payload, svc, "ops@example.com"))

	assert.Equal(t, "ops@example.com", svc.to)
	assert.Contains(t, svc.summary, "items: 3")
	assert.Contains(t, svc.summary, "total: 104.99")
	assert.Contains(t, svc.summary, "payment: card")
	assert.Contains(t, svc.summary, "2026-08-28")
}

func TestHandleOrderPlacedBadPayload(t *testing.T) {
	svc := &fakeEmailService{}
	err := handleOrderPlaced(context.Background(), []byte("not json"), svc, "ops@example.com")
	assert.Error(t, err)
	assert.Empty(t, svc.to)
}

func TestGetHeader(t *testing.T) {
	headers := []kafka.Header{
		{Key: "event_type", Value: []byte(producer.EventOrderPlaced)},
		{Key: "aggregate_type", Value: []byte("order")},
	}
	assert.Equal(t, producer.EventOrderPlaced, getHeader(headers, "event_type"))
	assert.Empty(t, getHeader(headers, "missing"))
	assert.Empty(t, getHeader(nil, "event_type"))
}
