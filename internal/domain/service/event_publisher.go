package service

import (
	"context"
	"time"
)

// Order event types.
const (
	OrderEventPlaced        = "order.placed"
	OrderEventStatusChanged = "order.status_changed"
)

// OrderEvent is published after an order change has been committed.
type OrderEvent struct {
	RequestID         string    `json:"request_id,omitempty"`
	Type              string    `json:"type"`
	OrderID           uint      `json:"order_id"`
	CustomerProfileID uint      `json:"customer_user"`
	BusinessProfileID uint      `json:"business_user"`
	Status            string    `json:"status"`
	PreviousStatus    string    `json:"previous_status,omitempty"`
	OccurredAt        time.Time `json:"occurred_at"`
}

// EventPublisher publishes domain events to a message queue.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error
	// Close releases any resources held by the publisher
	Close() error
}
