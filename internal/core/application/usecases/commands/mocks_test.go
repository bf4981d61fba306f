package commands_test

import (
	"context"
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number order.Number) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByNumber(ctx context.Context, number order.Number) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetAllByVendor(_ context.Context, _ kernel.UUID, _ *order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetAllBySupplier(_ context.Context, _ kernel.UUID, _ *order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetRecent(_ context.Context, _ int, _ *order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMaterialCatalog struct{ mock.Mock }

func (m *MockMaterialCatalog) Get(ctx context.Context, materialID kernel.UUID) (ports.MaterialSnapshot, error) {
	args := m.Called(ctx, materialID)
	return args.Get(0).(ports.MaterialSnapshot), args.Error(1)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// CapturingPublisher records events instead of asserting on their exact
// payload; OccurredAt makes literal matching impractical.
type CapturingPublisher struct {
	Events []ports.OrderEvent
}

func (p *CapturingPublisher) Publish(_ context.Context, event ports.OrderEvent) error {
	p.Events = append(p.Events, event)
	return nil
}

func vendorActor(t *testing.T) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), actor.RoleVendor)
	require.NoError(t, err)
	return a
}

func supplierActor(t *testing.T) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), actor.RoleSupplier)
	require.NoError(t, err)
	return a
}

// storedOrder builds a persisted-looking pending order between the two
// actors, as GetByNumber would return it.
func storedOrder(t *testing.T, vendor, supplier actor.Actor) *order.Order {
	t.Helper()
	number, err := order.GenerateNumber()
	require.NoError(t, err)

	price, err := kernel.NewMoney(5000)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Steel Rods", 10, price, "kg")
	require.NoError(t, err)

	charges, err := kernel.NewMoney(2000)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		vendor.ID(),
		supplier.ID(),
		[]order.Item{item},
		"12 Market Road",
		"",
		charges,
	)
	require.NoError(t, err)
	return aggregate
}
