package ports

import (
	"context"
	"time"
)

// Event kinds published on the order events topic.
const (
	OrderPlacedEvent        = "order.placed"
	OrderStatusChangedEvent = "order.status_changed"
)

// OrderEvent is the wire payload for order notifications. Delivery is
// fire-and-forget: a lost event never affects order correctness.
type OrderEvent struct {
	Kind          string    `json:"kind"`
	OrderNumber   string    `json:"order_number"`
	VendorID      string    `json:"vendor_id"`
	SupplierID    string    `json:"supplier_id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	FinalAmount   int64     `json:"final_amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// OrderEventPublisher delivers order events to the notification side channel.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
