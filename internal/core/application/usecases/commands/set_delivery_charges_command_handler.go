package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// SetDeliveryChargesCommandHandler applies a delivery charges change and the
// resulting final-amount recomputation as one persisted mutation.
type SetDeliveryChargesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetDeliveryChargesCommandHandler creates a handler for charge changes.
func NewSetDeliveryChargesCommandHandler(uowFactory OrderUoWFactory) SetDeliveryChargesCommandHandler {
	return SetDeliveryChargesCommandHandler{uowFactory: uowFactory}
}

// Handle applies the change inside a read-modify-write cycle with one
// conflict retry.
func (h *SetDeliveryChargesCommandHandler) Handle(
	ctx context.Context,
	cmd SetDeliveryChargesCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.Number(), func(o *order.Order) error {
		return o.SetDeliveryCharges(cmd.Charges(), cmd.By())
	})
}
