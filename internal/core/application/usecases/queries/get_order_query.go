package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order in full detail, including items, the
// tracking log, and the rating, for a party involved in it.
type GetOrderQuery struct {
	number order.Number
	by     actor.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a single-order detail query.
func NewGetOrderQuery(number order.Number, by actor.Actor) (GetOrderQuery, error) {
	if err := errors.Join(
		number.Validate(),
		by.Role().Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		number: number,
		by:     by,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Number returns the requested order's number.
func (q GetOrderQuery) Number() order.Number {
	return q.number
}

// By returns the requesting party.
func (q GetOrderQuery) By() actor.Actor {
	return q.by
}
