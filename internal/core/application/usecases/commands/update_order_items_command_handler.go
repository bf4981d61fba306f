package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// UpdateOrderItemsCommandHandler replaces a pending order's item snapshots
// and recomputes its totals in the same persisted mutation.
type UpdateOrderItemsCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.MaterialCatalog
}

// NewUpdateOrderItemsCommandHandler creates a handler for item updates.
func NewUpdateOrderItemsCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.MaterialCatalog,
) UpdateOrderItemsCommandHandler {
	return UpdateOrderItemsCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle re-snapshots the requested materials and applies the replacement
// inside a read-modify-write cycle with one conflict retry. Orders past
// pending reject the update.
func (h *UpdateOrderItemsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderItemsCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := snapshotItems(ctx, h.catalog, cmd.Items())
	if err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.Number(), func(o *order.Order) error {
		return o.UpdateItems(items, cmd.By())
	})
}
