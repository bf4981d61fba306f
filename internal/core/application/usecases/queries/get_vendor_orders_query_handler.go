package queries

import (
	"context"

	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

// GetVendorOrdersQueryHandler serves the vendor's order list, optionally
// fronted by the read-side cache. With a database configured it reads the
// summary projection directly; without one (memory backend) it derives
// summaries from aggregates through the repository.
type GetVendorOrdersQueryHandler struct {
	db    *gorm.DB
	repo  ports.OrderRepository
	cache SummaryCache
}

// NewGetVendorOrdersQueryHandler creates a handler reading raw summary rows.
// cache may be nil to disable caching.
func NewGetVendorOrdersQueryHandler(db *gorm.DB, cache SummaryCache) GetVendorOrdersQueryHandler {
	return GetVendorOrdersQueryHandler{db: db, cache: cache}
}

// NewRepoGetVendorOrdersQueryHandler creates a handler reading through the
// repository instead of raw SQL.
func NewRepoGetVendorOrdersQueryHandler(repo ports.OrderRepository, cache SummaryCache) GetVendorOrdersQueryHandler {
	return GetVendorOrdersQueryHandler{repo: repo, cache: cache}
}

// Handle executes the list query, newest orders first.
func (h GetVendorOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetVendorOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := cacheKey("vendor", query.VendorID(), query.StatusFilter())
	if h.cache != nil {
		if summaries, ok := h.cache.Get(ctx, key); ok {
			return summaries, nil
		}
	}

	summaries, err := h.load(ctx, query)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		h.cache.Set(ctx, key, summaries)
	}
	return summaries, nil
}

func (h GetVendorOrdersQueryHandler) load(ctx context.Context, query GetVendorOrdersQuery) ([]OrderSummary, error) {
	if h.db == nil {
		orders, err := h.repo.GetAllByVendor(ctx, query.VendorID(), query.StatusFilter())
		if err != nil {
			return nil, err
		}
		return summariesFromOrders(orders), nil
	}

	sqlQuery := `SELECT ` + summaryColumns + ` FROM orders WHERE vendor_id = ?`
	args := []any{query.VendorID().Bytes()}
	if filter := query.StatusFilter(); filter != nil {
		sqlQuery += ` AND status = ?`
		args = append(args, int(*filter))
	}
	sqlQuery += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
