package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand represents a vendor rating a delivered order. The rating
// value object validates the sub-scores at command construction, so a
// malformed rating never reaches the aggregate.
type RateOrderCommand struct {
	number order.Number
	rating order.Rating
	by     actor.Actor

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a rating command from the four 1-5 sub-scores
// and the optional comment.
func NewRateOrderCommand(
	number order.Number,
	quality, delivery, service, value int,
	comment string,
	by actor.Actor,
) (RateOrderCommand, error) {
	if err := errors.Join(
		number.Validate(),
		by.Role().Validate(),
	); err != nil {
		return RateOrderCommand{}, err
	}

	rating, err := order.NewRating(quality, delivery, service, value, comment)
	if err != nil {
		return RateOrderCommand{}, err
	}

	return RateOrderCommand{
		number: number,
		rating: rating,
		by:     by,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// Number returns the target order's number.
func (c RateOrderCommand) Number() order.Number {
	return c.number
}

// Rating returns the validated rating.
func (c RateOrderCommand) Rating() order.Rating {
	return c.rating
}

// By returns the acting party.
func (c RateOrderCommand) By() actor.Actor {
	return c.by
}
