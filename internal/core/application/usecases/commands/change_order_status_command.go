package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status: suppliers drive the order forward (or reject it),
// vendors cancel.
type ChangeOrderStatusCommand struct {
	number    order.Number
	newStatus order.Status
	by        actor.Actor

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status change command. Whether the
// transition is reachable and whether the actor may drive it is decided by
// the aggregate; the command only validates its inputs.
func NewChangeOrderStatusCommand(
	number order.Number,
	newStatus order.Status,
	by actor.Actor,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(
		number.Validate(),
		newStatus.Validate(),
		by.Role().Validate(),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		number:    number,
		newStatus: newStatus,
		by:        by,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// Number returns the target order's number.
func (c ChangeOrderStatusCommand) Number() order.Number {
	return c.number
}

// NewStatus returns the requested status.
func (c ChangeOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// By returns the acting party.
func (c ChangeOrderStatusCommand) By() actor.Actor {
	return c.by
}
