package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// MarkPaymentCommandHandler records payment outcomes against an order.
type MarkPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkPaymentCommandHandler creates a handler for payment updates.
func NewMarkPaymentCommandHandler(uowFactory OrderUoWFactory) MarkPaymentCommandHandler {
	return MarkPaymentCommandHandler{uowFactory: uowFactory}
}

// Handle applies the payment change inside a read-modify-write cycle with
// one conflict retry.
func (h *MarkPaymentCommandHandler) Handle(ctx context.Context, cmd MarkPaymentCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.Number(), func(o *order.Order) error {
		return o.MarkPayment(cmd.PaymentStatus(), cmd.By())
	})
}
