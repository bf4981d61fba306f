package queries

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetRecentOrdersQueryIsNotConstructed = errors.New(
	"GetRecentOrdersQuery must be created via NewGetRecentOrdersQuery constructor",
)

// maxRecentOrders caps the recent-orders page size.
const maxRecentOrders = 100

// GetRecentOrdersQuery retrieves the most recently created orders across all
// parties, optionally filtered by status. Used by operational tooling and
// the stale-order job rather than the role-scoped API listing.
type GetRecentOrdersQuery struct {
	limit        int
	statusFilter *order.Status

	guard guard.ConstructorGuard
}

// NewGetRecentOrdersQuery creates a recent-orders query with a bounded limit.
func NewGetRecentOrdersQuery(limit int, statusFilter *order.Status) (GetRecentOrdersQuery, error) {
	if limit < 1 || limit > maxRecentOrders {
		return GetRecentOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxRecentOrders)
	}
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return GetRecentOrdersQuery{}, err
		}
	}

	return GetRecentOrdersQuery{
		limit:        limit,
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRecentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentOrdersQueryIsNotConstructed)
}

// Limit returns the page size.
func (q GetRecentOrdersQuery) Limit() int {
	return q.limit
}

// StatusFilter returns the optional status filter.
func (q GetRecentOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}

// String renders the query for logs.
func (q GetRecentOrdersQuery) String() string {
	if q.statusFilter != nil {
		return fmt.Sprintf("recent %d orders in %s", q.limit, q.statusFilter)
	}
	return fmt.Sprintf("recent %d orders", q.limit)
}
