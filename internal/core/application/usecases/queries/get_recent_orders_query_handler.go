package queries

import (
	"context"

	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

// GetRecentOrdersQueryHandler serves the cross-party recent order list.
// Deliberately uncached: its consumers (operational tooling, the stale-order
// job) want current data.
type GetRecentOrdersQueryHandler struct {
	db   *gorm.DB
	repo ports.OrderRepository
}

// NewGetRecentOrdersQueryHandler creates a handler reading raw summary rows.
func NewGetRecentOrdersQueryHandler(db *gorm.DB) GetRecentOrdersQueryHandler {
	return GetRecentOrdersQueryHandler{db: db}
}

// NewRepoGetRecentOrdersQueryHandler creates a handler reading through the
// repository instead of raw SQL.
func NewRepoGetRecentOrdersQueryHandler(repo ports.OrderRepository) GetRecentOrdersQueryHandler {
	return GetRecentOrdersQueryHandler{repo: repo}
}

// Handle executes the query, newest orders first.
func (h GetRecentOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRecentOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if h.db == nil {
		orders, err := h.repo.GetRecent(ctx, query.Limit(), query.StatusFilter())
		if err != nil {
			return nil, err
		}
		return summariesFromOrders(orders), nil
	}

	sqlQuery := `SELECT ` + summaryColumns + ` FROM orders`
	args := []any{}
	if filter := query.StatusFilter(); filter != nil {
		sqlQuery += ` WHERE status = ?`
		args = append(args, int(*filter))
	}
	sqlQuery += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
