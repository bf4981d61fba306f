// Package ports defines the contracts between the order lifecycle core and
// its collaborators: persistence, the material catalog, identity, and event
// delivery. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Guarantees the implementation must provide:
//   - order-number uniqueness enforced at the storage layer (Add rejects
//     duplicates)
//   - Update is all-or-nothing and checks the aggregate version, returning
//     errs.VersionIsInvalidError when a concurrent write got there first
//   - vendor/supplier/status lookups are indexed; they are the dominant
//     query pattern
type OrderRepository interface {
	// Add persists a new order aggregate. Fails when an order with the
	// same number already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using an
	// optimistic version check against the previously loaded version.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByNumber retrieves an order by its external order number.
	GetByNumber(ctx context.Context, number order.Number) (*order.Order, error)

	// ExistsByNumber reports whether an order number is already taken.
	// Used by the collision-checked number generator.
	ExistsByNumber(ctx context.Context, number order.Number) (bool, error)

	// GetAllByVendor retrieves a vendor's orders, newest first, optionally
	// filtered by status.
	GetAllByVendor(ctx context.Context, vendorID kernel.UUID, statusFilter *order.Status) ([]*order.Order, error)

	// GetAllBySupplier retrieves a supplier's orders, newest first,
	// optionally filtered by status.
	GetAllBySupplier(ctx context.Context, supplierID kernel.UUID, statusFilter *order.Status) ([]*order.Order, error)

	// GetRecent retrieves the most recently created orders across all
	// parties, optionally filtered by status.
	GetRecent(ctx context.Context, limit int, statusFilter *order.Status) ([]*order.Order, error)
}
