// Package kafka delivers order events to the notification topic. Publication
// is fire-and-forget from the caller's point of view: a failed write is
// logged here and never affects the business operation that produced it.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"marketplace/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// OrderEventPublisher implements ports.OrderEventPublisher over a Kafka
// writer. Messages are keyed by order number so every order's events land on
// one partition and keep their relative order.
type OrderEventPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewOrderEventPublisher creates a publisher for the given brokers and topic.
func NewOrderEventPublisher(brokers []string, topic string, logger *slog.Logger) *OrderEventPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	return &OrderEventPublisher{
		writer: writer,
		logger: logger.With("component", "order_event_publisher"),
	}
}

// Publish writes one event to the topic.
func (p *OrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("event not serializable", "kind", event.Kind, "order", event.OrderNumber, "error", err)
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderNumber),
		Value: payload,
	})
	if err != nil {
		p.logger.Error("event publish failed", "kind", event.Kind, "order", event.OrderNumber, "error", err)
		return err
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
