package memory

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when Begin was
// never called, matching the database-backed unit of work's contract.
var ErrNoActiveTransaction = errors.New("no active transaction")

// InMemoryUnitOfWorkFactory creates unit of work instances over a shared
// in-process order store.
type InMemoryUnitOfWorkFactory struct {
	store *OrderStore
}

// NewInMemoryUnitOfWorkFactory creates a factory bound to the given store.
func NewInMemoryUnitOfWorkFactory(store *OrderStore) *InMemoryUnitOfWorkFactory {
	return &InMemoryUnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork for one business operation.
func (f *InMemoryUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &InMemoryUnitOfWork{store: f.store}
}

// InMemoryUnitOfWork mirrors the transactional unit of work's lifecycle over
// the in-process store. Writes apply immediately; the per-order version check
// in the repository still rejects lost updates, which is the property the
// command layer depends on.
type InMemoryUnitOfWork struct {
	store             *OrderStore
	active            bool
	trackedAggregates []kernel.UUID
}

// Begin marks the unit of work active. Calling Begin twice is a no-op.
func (uow *InMemoryUnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	return nil
}

// Commit ends the unit of work.
func (uow *InMemoryUnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.active = false
	return nil
}

// Rollback ends the unit of work. Already-applied writes are not undone;
// the memory backend is for development and tests, where a failed operation
// aborts before its single write anyway.
func (uow *InMemoryUnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.active = false
	return nil
}

// OrderRepository returns a repository over the shared store.
func (uow *InMemoryUnitOfWork) OrderRepository() ports.OrderRepository {
	return NewInMemoryOrderRepository(uow.store, uow)
}

// TrackAggregate records an aggregate modified within this unit of work.
func (uow *InMemoryUnitOfWork) TrackAggregate(id kernel.UUID, _ any) {
	uow.trackedAggregates = append(uow.trackedAggregates, id)
}
