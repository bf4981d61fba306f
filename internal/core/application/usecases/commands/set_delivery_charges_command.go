package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrSetDeliveryChargesCommandIsNotConstructed = errors.New(
	"SetDeliveryChargesCommand must be created via NewSetDeliveryChargesCommand constructor",
)

// SetDeliveryChargesCommand represents a supplier adjusting the delivery
// charges of an order that has not started preparation yet.
type SetDeliveryChargesCommand struct {
	number  order.Number
	charges kernel.Money
	by      actor.Actor

	guard guard.ConstructorGuard
}

// NewSetDeliveryChargesCommand creates a delivery charges command.
func NewSetDeliveryChargesCommand(
	number order.Number,
	charges kernel.Money,
	by actor.Actor,
) (SetDeliveryChargesCommand, error) {
	if err := errors.Join(
		number.Validate(),
		by.Role().Validate(),
	); err != nil {
		return SetDeliveryChargesCommand{}, err
	}

	return SetDeliveryChargesCommand{
		number:  number,
		charges: charges,
		by:      by,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDeliveryChargesCommand) Validate() error {
	return c.guard.Validate(ErrSetDeliveryChargesCommandIsNotConstructed)
}

// Number returns the target order's number.
func (c SetDeliveryChargesCommand) Number() order.Number {
	return c.number
}

// Charges returns the new delivery charges.
func (c SetDeliveryChargesCommand) Charges() kernel.Money {
	return c.charges
}

// By returns the acting party.
func (c SetDeliveryChargesCommand) By() actor.Actor {
	return c.by
}
