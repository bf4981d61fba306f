package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetSupplierOrdersQueryIsNotConstructed = errors.New(
	"GetSupplierOrdersQuery must be created via NewGetSupplierOrdersQuery constructor",
)

// GetSupplierOrdersQuery retrieves a supplier's incoming orders, newest
// first, optionally filtered by status.
type GetSupplierOrdersQuery struct {
	supplierID   kernel.UUID
	statusFilter *order.Status

	guard guard.ConstructorGuard
}

// NewGetSupplierOrdersQuery creates a supplier order list query. A nil
// status filter returns orders in every status.
func NewGetSupplierOrdersQuery(supplierID kernel.UUID, statusFilter *order.Status) (GetSupplierOrdersQuery, error) {
	if err := supplierID.Validate(); err != nil {
		return GetSupplierOrdersQuery{}, err
	}
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return GetSupplierOrdersQuery{}, err
		}
	}

	return GetSupplierOrdersQuery{
		supplierID:   supplierID,
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSupplierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSupplierOrdersQueryIsNotConstructed)
}

// SupplierID returns the supplier whose orders are listed.
func (q GetSupplierOrdersQuery) SupplierID() kernel.UUID {
	return q.supplierID
}

// StatusFilter returns the optional status filter.
func (q GetSupplierOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}
