package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateOrderItemsCommandIsNotConstructed = errors.New(
	"UpdateOrderItemsCommand must be created via NewUpdateOrderItemsCommand constructor",
)

// UpdateOrderItemsCommand represents a vendor's request to replace the line
// items of a not-yet-confirmed order. Items are re-snapshotted from the
// catalog at execution time, so current prices apply to the new items.
type UpdateOrderItemsCommand struct {
	number order.Number
	items  []ItemSpec
	by     actor.Actor

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemsCommand creates an item update command.
func NewUpdateOrderItemsCommand(
	number order.Number,
	items []ItemSpec,
	by actor.Actor,
) (UpdateOrderItemsCommand, error) {
	if err := errors.Join(
		number.Validate(),
		by.Role().Validate(),
	); err != nil {
		return UpdateOrderItemsCommand{}, err
	}
	if len(items) == 0 {
		return UpdateOrderItemsCommand{}, errs.NewValueIsRequiredError("order items")
	}

	return UpdateOrderItemsCommand{
		number: number,
		items:  append([]ItemSpec(nil), items...),
		by:     by,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemsCommandIsNotConstructed)
}

// Number returns the target order's number.
func (c UpdateOrderItemsCommand) Number() order.Number {
	return c.number
}

// Items returns the replacement material specifications.
func (c UpdateOrderItemsCommand) Items() []ItemSpec {
	return append([]ItemSpec(nil), c.items...)
}

// By returns the acting party.
func (c UpdateOrderItemsCommand) By() actor.Actor {
	return c.by
}
