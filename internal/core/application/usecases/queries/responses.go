// Package queries contains the read side of the CQRS split: lightweight
// lookups that bypass the aggregate and read the order store directly.
// Queries never mutate anything; list reads may be served from a cache,
// which is explicitly a read-side degradation and never feeds a mutation.
package queries

import (
	"context"
	"database/sql"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderSummary is the list-view projection of an order: enough for the
// role-scoped order lists without loading items or the tracking log.
type OrderSummary struct {
	Number          string    `json:"number"`
	VendorID        string    `json:"vendor_id"`
	SupplierID      string    `json:"supplier_id"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	TotalAmount     int64     `json:"total_amount"`
	DeliveryCharges int64     `json:"delivery_charges"`
	FinalAmount     int64     `json:"final_amount"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SummaryCache is the optional read-side cache for order lists. A nil cache
// disables caching; a miss is never an error.
type SummaryCache interface {
	Get(ctx context.Context, key string) ([]OrderSummary, bool)
	Set(ctx context.Context, key string, summaries []OrderSummary)
}

// summaryColumns is the column list every list query selects, in the order
// scanOrderSummaries expects.
const summaryColumns = `
	number,
	vendor_id,
	supplier_id,
	status,
	payment_status,
	total_amount,
	delivery_charges,
	final_amount,
	created_at,
	updated_at
`

// scanOrderSummaries drains the rows of a summary-column select.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	summaries := make([]OrderSummary, 0)

	for rows.Next() {
		var (
			summary       OrderSummary
			vendorID      uuid.UUID
			supplierID    uuid.UUID
			status        int
			paymentStatus int
		)

		if err := rows.Scan(
			&summary.Number,
			&vendorID,
			&supplierID,
			&status,
			&paymentStatus,
			&summary.TotalAmount,
			&summary.DeliveryCharges,
			&summary.FinalAmount,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		); err != nil {
			return nil, err
		}

		summary.VendorID = vendorID.String()
		summary.SupplierID = supplierID.String()
		summary.Status = order.Status(status).String()
		summary.PaymentStatus = order.PaymentStatus(paymentStatus).String()
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// summariesFromOrders projects full aggregates onto the list view. Used by
// handlers running without a summary-projection database, where lists come
// through the repository instead of raw SQL.
func summariesFromOrders(orders []*order.Order) []OrderSummary {
	summaries := make([]OrderSummary, 0, len(orders))
	for _, aggregate := range orders {
		summaries = append(summaries, OrderSummary{
			Number:          aggregate.Number().String(),
			VendorID:        aggregate.VendorID().String(),
			SupplierID:      aggregate.SupplierID().String(),
			Status:          aggregate.Status().String(),
			PaymentStatus:   aggregate.PaymentStatus().String(),
			TotalAmount:     aggregate.TotalAmount().Amount(),
			DeliveryCharges: aggregate.DeliveryCharges().Amount(),
			FinalAmount:     aggregate.FinalAmount().Amount(),
			CreatedAt:       aggregate.CreatedAt(),
			UpdatedAt:       aggregate.UpdatedAt(),
		})
	}
	return summaries
}

// cacheKey builds the cache key for a role-scoped list lookup.
func cacheKey(scope string, id kernel.UUID, statusFilter *order.Status) string {
	key := "orders:" + scope + ":" + id.String()
	if statusFilter != nil {
		key += ":" + statusFilter.String()
	}
	return key
}
