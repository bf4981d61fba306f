package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// GetOrderQueryHandler loads a single order aggregate in full. It goes
// through the repository rather than raw SQL because the detail view needs
// items, tracking steps, and the rating, and because visibility is scoped to
// the order's own parties.
type GetOrderQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(repo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo}
}

// Handle loads the order and rejects requesters who are neither its vendor
// nor its supplier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.repo.GetByNumber(ctx, query.Number())
	if err != nil {
		return nil, err
	}

	if !aggregate.InvolvesActor(query.By()) {
		return nil, errs.NewNotAuthorizedError(query.By().Role().String(), "view another party's order")
	}

	return aggregate, nil
}
