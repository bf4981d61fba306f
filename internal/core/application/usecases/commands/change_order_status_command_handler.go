package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// ChangeOrderStatusCommandHandler drives the order status state machine. It
// is the only write path that touches the tracking log after creation.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle applies the status change inside a read-modify-write cycle,
// retrying once on a concurrent-write conflict, and announces the new status
// after commit. Invalid transitions and unauthorized actors surface as the
// aggregate's errors with the order left unchanged.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := mutateOrder(ctx, h.uowFactory, cmd.Number(), func(o *order.Order) error {
		return o.ChangeStatus(cmd.NewStatus(), cmd.By())
	})
	if err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(ctx, ports.OrderEvent{
		Kind:          ports.OrderStatusChangedEvent,
		OrderNumber:   aggregate.Number().String(),
		VendorID:      aggregate.VendorID().String(),
		SupplierID:    aggregate.SupplierID().String(),
		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		FinalAmount:   aggregate.FinalAmount().Amount(),
		OccurredAt:    time.Now().UTC(),
	})

	return aggregate, nil
}
