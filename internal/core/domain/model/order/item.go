package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an immutable snapshot of a catalog material at order-creation time:
// later catalog price changes must not retroactively alter a placed order.
type Item struct {
	materialID kernel.UUID
	name       string
	quantity   int
	unitPrice  kernel.Money
	unit       string

	guard guard.ConstructorGuard
}

// NewItem creates a line-item snapshot. Quantity must be at least 1; the
// name and measurement unit are captured as the catalog reported them.
func NewItem(materialID kernel.UUID, name string, quantity int, unitPrice kernel.Money, unit string) (Item, error) {
	if err := materialID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("material name")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	if unit == "" {
		return Item{}, errs.NewValueIsRequiredError("material unit")
	}

	return Item{
		materialID: materialID,
		name:       name,
		quantity:   quantity,
		unitPrice:  unitPrice,
		unit:       unit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MaterialID returns the catalog identifier the snapshot was taken from.
func (i Item) MaterialID() kernel.UUID {
	return i.materialID
}

// Name returns the material name at snapshot time.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price at snapshot time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Unit returns the measurement unit, e.g. "kg" or "liter".
func (i Item) Unit() string {
	return i.unit
}

// Subtotal returns quantity × unit price.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.MultiplyBy(i.quantity)
}
