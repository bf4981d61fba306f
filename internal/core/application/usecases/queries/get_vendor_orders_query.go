package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetVendorOrdersQueryIsNotConstructed = errors.New(
	"GetVendorOrdersQuery must be created via NewGetVendorOrdersQuery constructor",
)

// GetVendorOrdersQuery retrieves a vendor's orders, newest first, optionally
// filtered by status.
type GetVendorOrdersQuery struct {
	vendorID     kernel.UUID
	statusFilter *order.Status

	guard guard.ConstructorGuard
}

// NewGetVendorOrdersQuery creates a vendor order list query. A nil status
// filter returns orders in every status.
func NewGetVendorOrdersQuery(vendorID kernel.UUID, statusFilter *order.Status) (GetVendorOrdersQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetVendorOrdersQuery{}, err
	}
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return GetVendorOrdersQuery{}, err
		}
	}

	return GetVendorOrdersQuery{
		vendorID:     vendorID,
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorOrdersQueryIsNotConstructed)
}

// VendorID returns the vendor whose orders are listed.
func (q GetVendorOrdersQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// StatusFilter returns the optional status filter.
func (q GetVendorOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}
