package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// RateOrderCommandHandler attaches a vendor's post-delivery rating.
type RateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRateOrderCommandHandler creates a handler for order ratings.
func NewRateOrderCommandHandler(uowFactory OrderUoWFactory) RateOrderCommandHandler {
	return RateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle applies the rating inside a read-modify-write cycle with one
// conflict retry. Orders not yet delivered, or already rated, reject it.
func (h *RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.Number(), func(o *order.Order) error {
		return o.SetRating(cmd.Rating(), cmd.By())
	})
}
