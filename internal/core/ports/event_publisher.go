package ports

import (
	"context"
	"time"
)

// OrderEvent is the integration event emitted after an order changes state.
type OrderEvent struct {
	EventType   string    `json:"event_type"`
	OrderID     int64     `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	Amount      float64   `json:"amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Event types published on the order stream.
const (
	OrderCreatedEvent       = "order.created"
	OrderStatusChangedEvent = "order.status_changed"
)

// OrderEventPublisher publishes order integration events to a message broker.
// Publishing happens after commit; a publish failure must not fail the command.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}

// NoopOrderEventPublisher discards events. Used when no broker is configured.
type NoopOrderEventPublisher struct{}

func (NoopOrderEventPublisher) Publish(ctx context.Context, event OrderEvent) error {
	return nil
}
