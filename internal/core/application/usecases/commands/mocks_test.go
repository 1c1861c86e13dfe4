package commands_test

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateItemStatus(
	ctx context.Context,
	orderID, productID kernel.UUID,
	from, to order.ItemStatus,
) error {
	args := m.Called(ctx, orderID, productID, from, to)
	return args.Error(0)
}

func (m *MockOrderRepository) ListDrifted(ctx context.Context, limit int) ([]kernel.UUID, error) {
	args := m.Called(ctx, limit)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

func (m *MockOrderRepository) ListCompletedByStore(
	ctx context.Context,
	storeID kernel.UUID,
	from, to time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, storeID, from, to)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Get(ctx context.Context, clientID, storeID, productID kernel.UUID) (*cart.Entry, error) {
	args := m.Called(ctx, clientID, storeID, productID)
	e, _ := args.Get(0).(*cart.Entry)
	return e, args.Error(1)
}

func (m *MockCartRepository) ListByClient(ctx context.Context, clientID kernel.UUID) ([]*cart.Entry, error) {
	args := m.Called(ctx, clientID)
	entries, _ := args.Get(0).([]*cart.Entry)
	return entries, args.Error(1)
}

func (m *MockCartRepository) ListByClientAndStore(ctx context.Context, clientID, storeID kernel.UUID) ([]*cart.Entry, error) {
	args := m.Called(ctx, clientID, storeID)
	entries, _ := args.Get(0).([]*cart.Entry)
	return entries, args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, e *cart.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockCartRepository) Remove(ctx context.Context, clientID, storeID, productID kernel.UUID) error {
	args := m.Called(ctx, clientID, storeID, productID)
	return args.Error(0)
}

func (m *MockCartRepository) RemoveEntries(ctx context.Context, clientID kernel.UUID, entries []*cart.Entry) error {
	args := m.Called(ctx, clientID, entries)
	return args.Error(0)
}

type MockStoreRepository struct{ mock.Mock }

func (m *MockStoreRepository) Add(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStoreRepository) Get(ctx context.Context, id kernel.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*store.Store)
	return s, args.Error(1)
}

func (m *MockStoreRepository) GetByJoinCode(ctx context.Context, joinCode string) (*store.Store, error) {
	args := m.Called(ctx, joinCode)
	s, _ := args.Get(0).(*store.Store)
	return s, args.Error(1)
}

func (m *MockStoreRepository) ListIDs(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

func (m *MockStoreRepository) AddRole(ctx context.Context, role *store.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockStoreRepository) GetRole(ctx context.Context, storeID, roleID kernel.UUID) (*store.Role, error) {
	args := m.Called(ctx, storeID, roleID)
	r, _ := args.Get(0).(*store.Role)
	return r, args.Error(1)
}

func (m *MockStoreRepository) ListRoles(ctx context.Context, storeID kernel.UUID) ([]*store.Role, error) {
	args := m.Called(ctx, storeID)
	roles, _ := args.Get(0).([]*store.Role)
	return roles, args.Error(1)
}

type MockMembershipRepository struct{ mock.Mock }

func (m *MockMembershipRepository) Get(ctx context.Context, storeID, userID kernel.UUID) (*store.Membership, error) {
	args := m.Called(ctx, storeID, userID)
	ms, _ := args.Get(0).(*store.Membership)
	return ms, args.Error(1)
}

func (m *MockMembershipRepository) Add(ctx context.Context, ms *store.Membership) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}

func (m *MockMembershipRepository) Update(ctx context.Context, ms *store.Membership) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}

func (m *MockMembershipRepository) Remove(ctx context.Context, storeID, userID kernel.UUID) error {
	args := m.Called(ctx, storeID, userID)
	return args.Error(0)
}

func (m *MockMembershipRepository) AddJoinRequest(ctx context.Context, r *store.JoinRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockMembershipRepository) GetJoinRequest(ctx context.Context, storeID, userID kernel.UUID) (*store.JoinRequest, error) {
	args := m.Called(ctx, storeID, userID)
	r, _ := args.Get(0).(*store.JoinRequest)
	return r, args.Error(1)
}

func (m *MockMembershipRepository) RemoveJoinRequest(ctx context.Context, storeID, userID kernel.UUID) error {
	args := m.Called(ctx, storeID, userID)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
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

func (m *MockUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockUoW) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

func (m *MockUoW) MembershipRepository() ports.MembershipRepository {
	args := m.Called()
	return args.Get(0).(ports.MembershipRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockWorkflowUoWFactory struct{ mock.Mock }

func (m *MockWorkflowUoWFactory) Create() commands.WorkflowUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkflowUoW)
}

type MockMembershipUoWFactory struct{ mock.Mock }

func (m *MockMembershipUoWFactory) Create() commands.MembershipUoW {
	args := m.Called()
	return args.Get(0).(commands.MembershipUoW)
}

type MockRevenueRollup struct{ mock.Mock }

func (m *MockRevenueRollup) Increment(ctx context.Context, storeID kernel.UUID, day kernel.Date, amount kernel.Money) error {
	args := m.Called(ctx, storeID, day, amount)
	return args.Error(0)
}

func (m *MockRevenueRollup) MonthTotals(
	ctx context.Context,
	storeID kernel.UUID,
	month kernel.Date,
) (map[int]kernel.Money, bool, error) {
	args := m.Called(ctx, storeID, month)
	totals, _ := args.Get(0).(map[int]kernel.Money)
	return totals, args.Bool(1), args.Error(2)
}

func (m *MockRevenueRollup) ReplaceMonth(
	ctx context.Context,
	storeID kernel.UUID,
	month kernel.Date,
	totals map[int]kernel.Money,
) error {
	args := m.Called(ctx, storeID, month, totals)
	return args.Error(0)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) Publish(ctx context.Context, events ...ports.OrderEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
