package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// numberAttempts bounds the collision-checked order number generation.
// Collisions are astronomically unlikely, so hitting the bound means the
// random source is broken, not that the keyspace is full.
const numberAttempts = 5

// PlaceOrderCommandHandler handles vendor checkout: snapshots the requested
// materials from the catalog, generates a collision-checked order number,
// creates the order in pending status, and announces it on the event channel.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.MaterialCatalog
	publisher  ports.OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.MaterialCatalog,
	publisher ports.OrderEventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		publisher:  publisher,
	}
}

// Handle processes the checkout command and returns the created order.
//
// The catalog lookup happens before the transaction opens: snapshots are
// plain reads and must not hold the order store's transaction open. Event
// publication happens after commit and is fire-and-forget; the publisher
// logs its own failures.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := snapshotItems(ctx, h.catalog, cmd.Items())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	number, err := generateFreeNumber(ctx, repo)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		cmd.By().ID(),
		cmd.SupplierID(),
		items,
		cmd.DeliveryAddress(),
		cmd.DeliveryInstructions(),
		cmd.DeliveryCharges(),
	)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(ctx, ports.OrderEvent{
		Kind:          ports.OrderPlacedEvent,
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

// generateFreeNumber produces an order number that is not yet taken,
// regenerating on collision instead of failing.
func generateFreeNumber(ctx context.Context, repo ports.OrderRepository) (order.Number, error) {
	for range numberAttempts {
		number, err := order.GenerateNumber()
		if err != nil {
			return order.Number{}, err
		}

		taken, err := repo.ExistsByNumber(ctx, number)
		if err != nil {
			return order.Number{}, err
		}
		if !taken {
			return number, nil
		}
	}

	return order.Number{}, errs.NewValueIsInvalidErrorWithCause("order number",
		fmt.Errorf("no free number after %d attempts", numberAttempts))
}
