// Package memory provides in-process implementations of the outbound ports
// for development and tests. The memory backend applies writes immediately
// instead of transactionally; it keeps the same version-check semantics as
// the database-backed repository so command-layer behavior stays identical.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// OrderStore is the shared in-process order storage. Safe for concurrent use.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
}

// NewOrderStore creates an empty store.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[string]*order.Order),
	}
}

// InMemoryOrderRepository implements ports.OrderRepository over an
// OrderStore. Aggregates are snapshotted on the way in and out so callers
// never share mutable state with the store.
type InMemoryOrderRepository struct {
	store   *OrderStore
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewInMemoryOrderRepository creates a repository over the given store.
func NewInMemoryOrderRepository(store *OrderStore, tracker aggregateTracker) *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		store:   store,
		tracker: tracker,
	}
}

// Add stores a new order, rejecting duplicate numbers.
func (r *InMemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := aggregate.Number().String()
	if _, taken := r.store.orders[key]; taken {
		return errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("order %s already exists", key))
	}

	stored, err := snapshot(aggregate)
	if err != nil {
		return err
	}
	r.store.orders[key] = stored

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update replaces a stored order after the optimistic version check.
func (r *InMemoryOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := aggregate.Number().String()
	stored, found := r.store.orders[key]
	if !found {
		return errs.NewObjectNotFoundError("order", key)
	}

	if stored.Version() != aggregate.Version()-1 {
		return errs.NewVersionIsInvalidErrorWithCause("order",
			fmt.Errorf("order %s was modified concurrently", key))
	}

	replacement, err := snapshot(aggregate)
	if err != nil {
		return err
	}
	r.store.orders[key] = replacement

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByNumber retrieves an order by its external number.
func (r *InMemoryOrderRepository) GetByNumber(_ context.Context, number order.Number) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stored, found := r.store.orders[number.String()]
	if !found {
		return nil, errs.NewObjectNotFoundError("order", number.String())
	}
	return snapshot(stored)
}

// ExistsByNumber reports whether an order number is already taken.
func (r *InMemoryOrderRepository) ExistsByNumber(_ context.Context, number order.Number) (bool, error) {
	if err := number.Validate(); err != nil {
		return false, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, found := r.store.orders[number.String()]
	return found, nil
}

// GetAllByVendor retrieves a vendor's orders, newest first.
func (r *InMemoryOrderRepository) GetAllByVendor(
	_ context.Context,
	vendorID kernel.UUID,
	statusFilter *order.Status,
) ([]*order.Order, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}
	return r.collect(func(o *order.Order) bool {
		return o.VendorID().IsEqual(vendorID)
	}, statusFilter, 0)
}

// GetAllBySupplier retrieves a supplier's orders, newest first.
func (r *InMemoryOrderRepository) GetAllBySupplier(
	_ context.Context,
	supplierID kernel.UUID,
	statusFilter *order.Status,
) ([]*order.Order, error) {
	if err := supplierID.Validate(); err != nil {
		return nil, err
	}
	return r.collect(func(o *order.Order) bool {
		return o.SupplierID().IsEqual(supplierID)
	}, statusFilter, 0)
}

// GetRecent retrieves the most recently created orders across all parties.
func (r *InMemoryOrderRepository) GetRecent(
	_ context.Context,
	limit int,
	statusFilter *order.Status,
) ([]*order.Order, error) {
	if limit < 1 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, int(^uint(0)>>1))
	}
	return r.collect(func(*order.Order) bool { return true }, statusFilter, limit)
}

func (r *InMemoryOrderRepository) collect(
	match func(*order.Order) bool,
	statusFilter *order.Status,
	limit int,
) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := make([]*order.Order, 0)
	for _, stored := range r.store.orders {
		if !match(stored) {
			continue
		}
		if statusFilter != nil && stored.Status() != *statusFilter {
			continue
		}

		copied, err := snapshot(stored)
		if err != nil {
			return nil, err
		}
		orders = append(orders, copied)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt().After(orders[j].CreatedAt())
	})

	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

// snapshot produces an independent copy of an order aggregate so store and
// caller never alias each other's state.
func snapshot(aggregate *order.Order) (*order.Order, error) {
	var rating *order.Rating
	if original := aggregate.Rating(); original != nil {
		copied := *original
		rating = &copied
	}

	return order.RestoreOrder(
		aggregate.ID(),
		aggregate.Number(),
		aggregate.VendorID(),
		aggregate.SupplierID(),
		aggregate.Items(),
		aggregate.DeliveryAddress(),
		aggregate.DeliveryInstructions(),
		aggregate.DeliveryCharges(),
		aggregate.Status(),
		aggregate.PaymentStatus(),
		aggregate.TrackingSteps(),
		rating,
		aggregate.CreatedAt(),
		aggregate.UpdatedAt(),
		aggregate.Version(),
	)
}
