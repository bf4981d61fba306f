package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ItemSpec names a material and a quantity as requested by the vendor. The
// name, price, and unit are not part of the request; they are snapshotted
// from the catalog when the command executes.
type ItemSpec struct {
	materialID kernel.UUID
	quantity   int
}

// NewItemSpec creates an item specification with a positive quantity.
func NewItemSpec(materialID kernel.UUID, quantity int) (ItemSpec, error) {
	if err := materialID.Validate(); err != nil {
		return ItemSpec{}, err
	}
	if quantity < 1 {
		return ItemSpec{}, errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	return ItemSpec{materialID: materialID, quantity: quantity}, nil
}

// MaterialID returns the requested catalog material.
func (s ItemSpec) MaterialID() kernel.UUID {
	return s.materialID
}

// Quantity returns the requested quantity.
func (s ItemSpec) Quantity() int {
	return s.quantity
}

// snapshotItems resolves each spec through the material catalog into an
// immutable line-item snapshot. An unknown material fails the whole command.
func snapshotItems(ctx context.Context, catalog ports.MaterialCatalog, specs []ItemSpec) ([]order.Item, error) {
	items := make([]order.Item, 0, len(specs))
	for _, spec := range specs {
		material, err := catalog.Get(ctx, spec.MaterialID())
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(material.ID, material.Name, spec.Quantity(), material.Price, material.Unit)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
