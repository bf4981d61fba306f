package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// MaterialSnapshot is the immutable view of a catalog material at lookup
// time: name, per-unit price, and measurement unit. Orders copy these values
// into their line items so later catalog changes never alter placed orders.
type MaterialSnapshot struct {
	ID    kernel.UUID
	Name  string
	Price kernel.Money
	Unit  string
}

// MaterialCatalog is the read-only lookup into the material catalog. The
// catalog itself (CRUD, search) is owned elsewhere; the order core only
// snapshots materials at order-creation time.
type MaterialCatalog interface {
	// Get returns the current snapshot for a material, or
	// errs.ObjectNotFoundError for an unknown identifier.
	Get(ctx context.Context, materialID kernel.UUID) (MaterialSnapshot, error)
}
