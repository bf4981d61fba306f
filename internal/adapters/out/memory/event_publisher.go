package memory

import (
	"context"
	"log/slog"

	"marketplace/internal/core/ports"
)

// LogOrderEventPublisher implements ports.OrderEventPublisher by writing
// events to the log. Used by the memory backend, where there is no broker to
// publish to but the event flow should still be visible.
type LogOrderEventPublisher struct {
	logger *slog.Logger
}

// NewLogOrderEventPublisher creates a publisher that logs events.
func NewLogOrderEventPublisher(logger *slog.Logger) *LogOrderEventPublisher {
	return &LogOrderEventPublisher{
		logger: logger.With("component", "order_event_publisher"),
	}
}

// Publish logs the event and always succeeds.
func (p *LogOrderEventPublisher) Publish(_ context.Context, event ports.OrderEvent) error {
	p.logger.Info("order event",
		"kind", event.Kind,
		"order", event.OrderNumber,
		"status", event.Status,
		"payment_status", event.PaymentStatus,
	)
	return nil
}
