package commands_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/testdb"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewReconcileOrderStatusCommand_BatchSize(t *testing.T) {
	_, err := commands.NewReconcileOrderStatusCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

// driftedOrder is an order whose stored header says Waiting although every
// item is already delivered.
func driftedOrder(t *testing.T) *order.Order {
	t.Helper()
	orderID := kernel.NewUUID()
	item := mustItem(t, orderID, storeA, itemDetails(kernel.NewUUID(), 2, "7.25", 0), order.ItemDelivered)
	o, err := order.RestoreOrder(orderID, kernel.NewUUID(), storeA, "Tarjeta", "",
		time.Date(2024, time.March, 2, 12, 0, 0, 0, time.UTC), order.Waiting, kernel.MustMoney("14.50"),
		[]*order.OrderItem{item})
	require.NoError(t, err)
	return o
}

func TestReconcileOrderStatusCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	drifted := driftedOrder(t)
	// Repaired by another writer between the listing and the locked read.
	settled := orderWithItems(t, storeA, order.ItemReceived)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("ListDrifted", ctx, 50).Return([]kernel.UUID{settled.ID(), drifted.ID()}, nil).Once(),
		repo.On("GetForUpdate", ctx, settled.ID()).Return(settled, nil).Once(),
		repo.On("GetForUpdate", ctx, drifted.ID()).Return(drifted, nil).Once(),
		repo.On("UpdateStatus", ctx, drifted).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	rollup := new(MockRevenueRollup)
	day, _ := kernel.NewDate(2024, time.March, 2)
	rollup.On("Increment", ctx, storeA, day, mock.Anything).Return(errors.New("redis down")).Once()
	publisher := new(MockOrderEventPublisher)
	publisher.On("Publish", ctx, mock.MatchedBy(func(events []ports.OrderEvent) bool {
		return len(events) == 1 && events[0].Type == ports.OrderCompleted
	})).Return(nil).Once()
	notifier := commands.NewOrderNotifier(publisher, rollup, nil, logger.Nop(), time.UTC)

	cmd, err := commands.NewReconcileOrderStatusCommand(50)
	require.NoError(t, err)

	h := commands.NewReconcileOrderStatusCommandHandler(factory, notifier)
	fixed, err := h.Handle(ctx, cmd)
	require.NoError(t, err, "rollup failures are logged, not returned")
	assert.Equal(t, 1, fixed)
	assert.True(t, drifted.IsCompleted())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	rollup.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestReconcileOrderStatusCommandHandler_Handle_NothingToFix(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("ListDrifted", ctx, 10).Return([]kernel.UUID{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, _ := commands.NewReconcileOrderStatusCommand(10)
	h := commands.NewReconcileOrderStatusCommandHandler(factory, nil)
	fixed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, fixed)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	repo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
}

func TestReconcileOrderStatusCommandHandler_Handle_LockedReadFails(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("ListDrifted", ctx, 10).Return([]kernel.UUID{id}, nil).Once()
	repo.On("GetForUpdate", ctx, id).Return(nil, errors.New("lock timeout")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, _ := commands.NewReconcileOrderStatusCommand(10)
	h := commands.NewReconcileOrderStatusCommandHandler(factory, nil)
	_, err := h.Handle(ctx, cmd)
	require.EqualError(t, err, "lock timeout")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

type orderUoWFactoryFunc func() commands.OrderUoW

func (f orderUoWFactoryFunc) Create() commands.OrderUoW {
	return f()
}

// TestReconcileOrderStatusCommandHandler_Handle_ReachesPastIdleOrders fills
// a whole batch with older orders nobody has touched yet; the newer drifted
// order must still be repaired on the first run.
func TestReconcileOrderStatusCommandHandler_Handle_ReachesPastIdleOrders(t *testing.T) {
	ctx := t.Context()
	gormFactory := postgres.NewGormUnitOfWorkFactory(testdb.SQLite(t))
	factory := orderUoWFactoryFunc(func() commands.OrderUoW {
		return gormFactory.Create()
	})
	orders := gormFactory.Create().OrderRepository()

	const batchSize = 10
	for range batchSize {
		require.NoError(t, orders.Add(ctx, orderWithItems(t, storeA, order.ItemReceived)))
	}

	orderID := kernel.NewUUID()
	first := mustItem(t, orderID, storeA, itemDetails(kernel.NewUUID(), 1, "3.00", 0), order.ItemDelivered)
	second := mustItem(t, orderID, storeA, itemDetails(kernel.NewUUID(), 1, "4.00", 0), order.ItemDelivered)
	drifted, err := order.RestoreOrder(orderID, kernel.NewUUID(), storeA, "Tarjeta", "",
		time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC), order.Paid, kernel.MustMoney("7.00"),
		[]*order.OrderItem{first, second})
	require.NoError(t, err)
	require.NoError(t, orders.Add(ctx, drifted))

	cmd, err := commands.NewReconcileOrderStatusCommand(batchSize)
	require.NoError(t, err)
	h := commands.NewReconcileOrderStatusCommandHandler(factory, nil)

	fixed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, fixed)

	loaded, err := orders.Get(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, order.Completed, loaded.Status())

	fixed, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, fixed)
}

func TestRebuildRevenueRollupCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	// 02:00 UTC on March 3 is still March 2 in Bogotá.
	orderID := kernel.NewUUID()
	item := mustItem(t, orderID, storeA, itemDetails(kernel.NewUUID(), 2, "7.25", 0), order.ItemDelivered)
	completed, err := order.RestoreOrder(orderID, kernel.NewUUID(), storeA, "Tarjeta", "",
		time.Date(2024, time.March, 3, 2, 0, 0, 0, time.UTC), order.Completed, kernel.MustMoney("14.50"),
		[]*order.OrderItem{item})
	require.NoError(t, err)

	month, _ := kernel.NewDate(2024, time.March, 17)
	cmd, err := commands.NewRebuildRevenueRollupCommand(storeA, month)
	require.NoError(t, err)
	assert.Equal(t, 1, cmd.Month().Day())

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("ListCompletedByStore", ctx, storeA,
		time.Date(2024, time.March, 1, 0, 0, 0, 0, bogota),
		time.Date(2024, time.April, 1, 0, 0, 0, 0, bogota),
	).Return([]*order.Order{completed}, nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	rollup := new(MockRevenueRollup)
	rollup.On("ReplaceMonth", ctx, storeA, cmd.Month(), mock.MatchedBy(func(totals map[int]kernel.Money) bool {
		total, ok := totals[2]
		return len(totals) == 1 && ok && total.String() == "14.50"
	})).Return(nil).Once()

	h := commands.NewRebuildRevenueRollupCommandHandler(factory, rollup, services.NewRevenueCalculator(bogota))
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	rollup.AssertExpectations(t)
}
