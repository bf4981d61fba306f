package memory_test

import (
	"testing"

	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*memory.InMemoryOrderRepository, ports.UnitOfWork) {
	t.Helper()
	store := memory.NewOrderStore()
	uow := memory.NewInMemoryUnitOfWorkFactory(store).Create()
	repo, ok := uow.OrderRepository().(*memory.InMemoryOrderRepository)
	require.True(t, ok)
	return repo, uow
}

func newAggregate(t *testing.T, vendorID, supplierID kernel.UUID) *order.Order {
	t.Helper()

	number, err := order.GenerateNumber()
	require.NoError(t, err)

	price, err := kernel.NewMoney(5000)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Steel Rods", 10, price, "kg")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		vendorID,
		supplierID,
		[]order.Item{item},
		"12 Market Road",
		"",
		kernel.ZeroMoney(),
	)
	require.NoError(t, err)
	return aggregate
}

func supplierFor(t *testing.T, aggregate *order.Order) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(aggregate.SupplierID(), actor.RoleSupplier)
	require.NoError(t, err)
	return a
}

func TestInMemoryOrderRepository_AddAndGet(t *testing.T) {
	ctx := t.Context()
	repo, _ := newRepo(t)
	aggregate := newAggregate(t, kernel.NewUUID(), kernel.NewUUID())

	t.Run("should round-trip an aggregate", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, aggregate))

		loaded, err := repo.GetByNumber(ctx, aggregate.Number())
		require.NoError(t, err)
		assert.True(t, loaded.IsEqual(aggregate))
		assert.Equal(t, aggregate.Version(), loaded.Version())
		assert.Len(t, loaded.TrackingSteps(), 1)
	})

	t.Run("should reject a duplicate order number", func(t *testing.T) {
		err := repo.Add(ctx, aggregate)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should not alias stored state", func(t *testing.T) {
		loaded, err := repo.GetByNumber(ctx, aggregate.Number())
		require.NoError(t, err)
		require.NoError(t, loaded.ChangeStatus(order.Confirmed, supplierFor(t, loaded)))

		fresh, err := repo.GetByNumber(ctx, aggregate.Number())
		require.NoError(t, err)
		assert.Equal(t, order.Pending, fresh.Status())
	})

	t.Run("should return not found for an unknown number", func(t *testing.T) {
		unknown, err := order.GenerateNumber()
		require.NoError(t, err)

		_, err = repo.GetByNumber(ctx, unknown)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestInMemoryOrderRepository_Update(t *testing.T) {
	ctx := t.Context()

	t.Run("should persist a mutation", func(t *testing.T) {
		repo, _ := newRepo(t)
		aggregate := newAggregate(t, kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, repo.Add(ctx, aggregate))

		loaded, err := repo.GetByNumber(ctx, aggregate.Number())
		require.NoError(t, err)
		require.NoError(t, loaded.ChangeStatus(order.Confirmed, supplierFor(t, loaded)))
		require.NoError(t, repo.Update(ctx, loaded))

		fresh, err := repo.GetByNumber(ctx, aggregate.Number())
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, fresh.Status())
		assert.Equal(t, loaded.Version(), fresh.Version())
	})

	t.Run("should detect a lost update", func(t *testing.T) {
		repo, _ := newRepo(t)
		aggregate := newAggregate(t, kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, repo.Add(ctx, aggregate))

		first, err := repo.GetByNumber(ctx, aggregate.Number())
		require.NoError(t, err)
		second, err := repo.GetByNumber(ctx, aggregate.Number())
		require.NoError(t, err)

		require.NoError(t, first.ChangeStatus(order.Confirmed, supplierFor(t, first)))
		require.NoError(t, repo.Update(ctx, first))

		require.NoError(t, second.ChangeStatus(order.Rejected, supplierFor(t, second)))
		err = repo.Update(ctx, second)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})

	t.Run("should return not found for an unknown order", func(t *testing.T) {
		repo, _ := newRepo(t)
		aggregate := newAggregate(t, kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, aggregate.ChangeStatus(order.Confirmed, supplierFor(t, aggregate)))

		err := repo.Update(ctx, aggregate)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestInMemoryOrderRepository_ExistsByNumber(t *testing.T) {
	ctx := t.Context()
	repo, _ := newRepo(t)
	aggregate := newAggregate(t, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, repo.Add(ctx, aggregate))

	taken, err := repo.ExistsByNumber(ctx, aggregate.Number())
	require.NoError(t, err)
	assert.True(t, taken)

	free, err := order.GenerateNumber()
	require.NoError(t, err)
	taken, err = repo.ExistsByNumber(ctx, free)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestInMemoryOrderRepository_Lists(t *testing.T) {
	ctx := t.Context()
	repo, _ := newRepo(t)

	vendorID := kernel.NewUUID()
	supplierID := kernel.NewUUID()

	mine := newAggregate(t, vendorID, supplierID)
	require.NoError(t, repo.Add(ctx, mine))

	later := newAggregate(t, vendorID, supplierID)
	require.NoError(t, later.ChangeStatus(order.Confirmed, supplierFor(t, later)))
	require.NoError(t, repo.Add(ctx, later))

	other := newAggregate(t, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, repo.Add(ctx, other))

	t.Run("should scope the vendor list and order it newest first", func(t *testing.T) {
		orders, err := repo.GetAllByVendor(ctx, vendorID, nil)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, later.Number().String(), orders[0].Number().String())
		assert.Equal(t, mine.Number().String(), orders[1].Number().String())
	})

	t.Run("should filter the vendor list by status", func(t *testing.T) {
		pending := order.Pending
		orders, err := repo.GetAllByVendor(ctx, vendorID, &pending)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, mine.Number().String(), orders[0].Number().String())
	})

	t.Run("should scope the supplier list", func(t *testing.T) {
		orders, err := repo.GetAllBySupplier(ctx, supplierID, nil)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("should cap the recent list at the limit", func(t *testing.T) {
		orders, err := repo.GetRecent(ctx, 2, nil)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("should reject a non-positive limit", func(t *testing.T) {
		_, err := repo.GetRecent(ctx, 0, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestInMemoryUnitOfWork_Lifecycle(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewInMemoryUnitOfWorkFactory(memory.NewOrderStore())

	t.Run("should commit after begin", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.Commit(ctx))
	})

	t.Run("should reject commit without begin", func(t *testing.T) {
		uow := factory.Create()
		require.ErrorIs(t, uow.Commit(ctx), memory.ErrNoActiveTransaction)
	})

	t.Run("should reject rollback after commit", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.Commit(ctx))
		require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveTransaction)
	})
}

func TestInMemoryMaterialCatalog_Get(t *testing.T) {
	ctx := t.Context()
	catalog := memory.NewInMemoryMaterialCatalog()

	price, err := kernel.NewMoney(35000)
	require.NoError(t, err)
	snapshot := ports.MaterialSnapshot{
		ID:    kernel.NewUUID(),
		Name:  "Cement",
		Price: price,
		Unit:  "bag",
	}
	catalog.Put(snapshot, true)

	t.Run("should return a seeded material", func(t *testing.T) {
		material, err := catalog.Get(ctx, snapshot.ID)
		require.NoError(t, err)
		assert.Equal(t, snapshot, material)
	})

	t.Run("should treat out-of-stock materials as unknown", func(t *testing.T) {
		catalog.Put(snapshot, false)

		_, err := catalog.Get(ctx, snapshot.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should return not found for an unknown material", func(t *testing.T) {
		_, err := catalog.Get(ctx, kernel.NewUUID())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
