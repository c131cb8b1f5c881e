package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/pricing"
	"catering/internal/core/domain/model/stats"
	"catering/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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

func (m *MockOrderRepository) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOwned(ctx context.Context, id, ownerID uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, event order.CreatedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkProcessed(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockOutboxRepository) MarkFailed(ctx context.Context, id int64, cause error, abandon bool) error {
	args := m.Called(ctx, id, cause, abandon)
	return args.Error(0)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Get(ctx context.Context, id uuid.UUID) (order.MenuSnapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.MenuSnapshot), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Get(ctx context.Context, id uuid.UUID) (customer.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(customer.Customer), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) OrderCreated(ctx context.Context, msg ports.OrderConfirmation) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockStatsStore struct{ mock.Mock }

func (m *MockStatsStore) Increment(ctx context.Context, inc stats.Increment) error {
	args := m.Called(ctx, inc)
	return args.Error(0)
}

func (m *MockStatsStore) List(ctx context.Context, from, to time.Time) ([]stats.Rollup, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stats.Rollup), args.Error(1)
}

// MockUoW implements every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockPlaceOrderUoWFactory struct{ mock.Mock }

func (m *MockPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PlaceOrderUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEngine() pricing.Engine {
	return pricing.NewEngine(pricing.NewFlatDeliveryFeePolicy(decimal.NewFromInt(5), "Bordeaux"))
}

func testCustomer(t *testing.T) customer.Customer {
	t.Helper()
	addr, err := kernel.NewAddress("12 rue Sainte-Catherine")
	require.NoError(t, err)
	return customer.Customer{
		ID:            uuid.New(),
		Email:         "julie@example.com",
		FirstName:     "Julie",
		PostalAddress: addr,
		City:          "Bordeaux",
		Role:          kernel.RoleCustomer,
	}
}

func testMenu() order.MenuSnapshot {
	return order.MenuSnapshot{
		ID:           uuid.New(),
		Title:        "Buffet campagnard",
		UnitPrice:    decimal.NewFromInt(20),
		MinHeadcount: 4,
	}
}

func customerPrincipal(c customer.Customer) kernel.Principal {
	return kernel.Principal{UserID: c.ID, Role: kernel.RoleCustomer}
}

func staffPrincipal() kernel.Principal {
	return kernel.Principal{UserID: uuid.New(), Role: kernel.RoleEmployee}
}

// testOrder builds a persisted-looking order (no pending transitions) in the given status.
func testOrder(t *testing.T, owner customer.Customer, status order.Status, materialLoan bool) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	number, err := order.NewNumber(now)
	require.NoError(t, err)
	deliveryTime, err := kernel.NewDeliveryTime("12:30")
	require.NoError(t, err)

	o, err := order.NewOrder(order.Draft{
		ID:           uuid.New(),
		Number:       number,
		Owner:        owner,
		Menu:         testMenu(),
		ServiceDate:  now.AddDate(0, 0, 14),
		DeliveryTime: deliveryTime,
		Headcount:    9,
		Address:      owner.PostalAddress,
		MaterialLoan: materialLoan,
		CreatedAt:    now,
	}, testEngine())
	require.NoError(t, err)

	path := map[order.Status][]order.Status{
		order.Pending:       nil,
		order.Accepted:      {order.Accepted},
		order.InPreparation: {order.Accepted, order.InPreparation},
		order.InDelivery:    {order.Accepted, order.InPreparation, order.InDelivery},
		order.Cancelled:     {order.Cancelled},
	}
	steps, ok := path[status]
	if !ok && status == order.AwaitingMaterialReturn {
		steps = []order.Status{order.Accepted, order.InPreparation, order.InDelivery, order.AwaitingMaterialReturn}
	}
	for _, st := range steps {
		require.NoError(t, o.TransitionTo(st, uuid.New(), now))
	}
	o.ClearTransitions()
	return o
}
