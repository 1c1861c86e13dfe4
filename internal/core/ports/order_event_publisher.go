package ports

import (
	"context"
	"time"
)

type OrderEventType string

const (
	OrderCreated      OrderEventType = "order.created"
	OrderItemAdvanced OrderEventType = "order.item_advanced"
	OrderCompleted    OrderEventType = "order.completed"
)

// OrderEvent is the change notification dashboards subscribe to instead of
// caching reads.
type OrderEvent struct {
	Type       OrderEventType `json:"type"`
	OrderID    string         `json:"orderId"`
	StoreID    string         `json:"storeId"`
	ClientID   string         `json:"clientId"`
	ProductID  string         `json:"productId,omitempty"`
	FromStatus string         `json:"fromStatus,omitempty"`
	ToStatus   string         `json:"toStatus,omitempty"`
	Status     string         `json:"orderStatus"`
	Total      string         `json:"total"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// OrderEventPublisher delivers order events after their transaction committed.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...OrderEvent) error
}
