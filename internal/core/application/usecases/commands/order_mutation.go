package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// conflictRetries is how many times a mutation is transparently retried when
// the optimistic version check detects a concurrent write. One retry is
// enough: the reloaded aggregate either accepts or properly rejects the
// change on the second attempt.
const conflictRetries = 1

// mutateOrder runs a read-modify-write cycle against a single order record:
// begin, load by number, apply the mutation, persist with the version check,
// commit. On a version conflict the whole cycle is retried against the fresh
// record. Any other error aborts and rolls back.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	number order.Number,
	mutate func(o *order.Order) error,
) (*order.Order, error) {
	var lastErr error

	for attempt := 0; attempt <= conflictRetries; attempt++ {
		aggregate, err := mutateOrderOnce(ctx, uowFactory, number, mutate)
		if err == nil {
			return aggregate, nil
		}
		if !errors.Is(err, errs.ErrVersionIsInvalid) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func mutateOrderOnce(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	number order.Number,
	mutate func(o *order.Order) error,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if err = mutate(aggregate); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
