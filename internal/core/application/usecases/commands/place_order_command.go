package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a vendor's checkout request: which supplier,
// which materials in which quantities, and where to deliver.
type PlaceOrderCommand struct {
	by                   actor.Actor
	supplierID           kernel.UUID
	items                []ItemSpec
	deliveryAddress      string
	deliveryInstructions string
	deliveryCharges      kernel.Money

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a checkout command. The acting party must be
// a vendor, the supplier must be a different party, and at least one item
// with a valid quantity is required.
func NewPlaceOrderCommand(
	by actor.Actor,
	supplierID kernel.UUID,
	items []ItemSpec,
	deliveryAddress string,
	deliveryInstructions string,
	deliveryCharges kernel.Money,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(by),
		cmd.setSupplierID(supplierID),
		cmd.setItems(items),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.deliveryInstructions = deliveryInstructions
	cmd.deliveryCharges = deliveryCharges
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// By returns the vendor placing the order.
func (c PlaceOrderCommand) By() actor.Actor {
	return c.by
}

// SupplierID returns the supplier the order is placed against.
func (c PlaceOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Items returns the requested material specifications.
func (c PlaceOrderCommand) Items() []ItemSpec {
	return append([]ItemSpec(nil), c.items...)
}

// DeliveryAddress returns the delivery address.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryInstructions returns the optional delivery instructions.
func (c PlaceOrderCommand) DeliveryInstructions() string {
	return c.deliveryInstructions
}

// DeliveryCharges returns the delivery charges to apply at creation.
func (c PlaceOrderCommand) DeliveryCharges() kernel.Money {
	return c.deliveryCharges
}

func (c *PlaceOrderCommand) setActor(by actor.Actor) error {
	if by.Role() != actor.RoleVendor {
		return errs.NewNotAuthorizedError(by.Role().String(), "place an order")
	}
	c.by = by
	return nil
}

func (c *PlaceOrderCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplier id", err)
	}
	c.supplierID = supplierID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []ItemSpec) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	c.items = append([]ItemSpec(nil), items...)
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	c.deliveryAddress = address
	return nil
}
