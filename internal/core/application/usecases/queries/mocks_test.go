package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepositories struct {
	orders      *MockOrderRepository
	stores      *MockStoreRepository
	memberships *MockMembershipRepository
}

func newMockRepositories() *MockRepositories {
	return &MockRepositories{
		orders:      new(MockOrderRepository),
		stores:      new(MockStoreRepository),
		memberships: new(MockMembershipRepository),
	}
}

func (r *MockRepositories) OrderRepository() ports.OrderRepository { return r.orders }

func (r *MockRepositories) StoreRepository() ports.StoreRepository { return r.stores }

func (r *MockRepositories) MembershipRepository() ports.MembershipRepository { return r.memberships }

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(_ context.Context, _ *order.Order) error { return nil }
func (m *MockOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetForUpdate(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) UpdateStatus(_ context.Context, _ *order.Order) error { return nil }
func (m *MockOrderRepository) UpdateItemStatus(_ context.Context, _, _ kernel.UUID, _, _ order.ItemStatus) error {
	return nil
}
func (m *MockOrderRepository) ListDrifted(_ context.Context, _ int) ([]kernel.UUID, error) {
	return nil, nil
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

type MockStoreRepository struct{ mock.Mock }

func (m *MockStoreRepository) Add(_ context.Context, _ *store.Store) error { return nil }
func (m *MockStoreRepository) Get(ctx context.Context, id kernel.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	st, _ := args.Get(0).(*store.Store)
	return st, args.Error(1)
}
func (m *MockStoreRepository) GetByJoinCode(_ context.Context, _ string) (*store.Store, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockStoreRepository) ListIDs(_ context.Context) ([]kernel.UUID, error) { return nil, nil }
func (m *MockStoreRepository) AddRole(_ context.Context, _ *store.Role) error { return nil }
func (m *MockStoreRepository) GetRole(ctx context.Context, storeID, roleID kernel.UUID) (*store.Role, error) {
	args := m.Called(ctx, storeID, roleID)
	role, _ := args.Get(0).(*store.Role)
	return role, args.Error(1)
}
func (m *MockStoreRepository) ListRoles(_ context.Context, _ kernel.UUID) ([]*store.Role, error) {
	return nil, nil
}

type MockMembershipRepository struct{ mock.Mock }

func (m *MockMembershipRepository) Get(ctx context.Context, storeID, userID kernel.UUID) (*store.Membership, error) {
	args := m.Called(ctx, storeID, userID)
	ms, _ := args.Get(0).(*store.Membership)
	return ms, args.Error(1)
}
func (m *MockMembershipRepository) Add(_ context.Context, _ *store.Membership) error { return nil }
func (m *MockMembershipRepository) Update(_ context.Context, _ *store.Membership) error { return nil }
func (m *MockMembershipRepository) Remove(_ context.Context, _, _ kernel.UUID) error { return nil }
func (m *MockMembershipRepository) AddJoinRequest(_ context.Context, _ *store.JoinRequest) error {
	return nil
}
func (m *MockMembershipRepository) GetJoinRequest(_ context.Context, _, _ kernel.UUID) (*store.JoinRequest, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockMembershipRepository) RemoveJoinRequest(_ context.Context, _, _ kernel.UUID) error {
	return nil
}

type MockRevenueRollup struct{ mock.Mock }

func (m *MockRevenueRollup) Increment(_ context.Context, _ kernel.UUID, _ kernel.Date, _ kernel.Money) error {
	return nil
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
func (m *MockRevenueRollup) ReplaceMonth(_ context.Context, _ kernel.UUID, _ kernel.Date, _ map[int]kernel.Money) error {
	return nil
}

// member registers userID at st. With no stages the member is pending.
func (r *MockRepositories) member(t *testing.T, st *store.Store, userID kernel.UUID, stages ...store.Stage) {
	t.Helper()
	r.stores.On("Get", mock.Anything, st.ID()).Return(st, nil)

	var roleID *kernel.UUID
	if len(stages) > 0 {
		role, err := store.NewRole(kernel.NewUUID(), st.ID(), "Rol", "", "#000000", store.NewStageSet(stages...), st.OwnerID())
		require.NoError(t, err)
		id := role.ID()
		roleID = &id
		r.stores.On("GetRole", mock.Anything, st.ID(), id).Return(role, nil)
	}

	m, err := store.RestoreMembership(st.ID(), userID, roleID, time.Now())
	require.NoError(t, err)
	r.memberships.On("Get", mock.Anything, st.ID(), userID).Return(m, nil)
}

func newTestStore(t *testing.T, name string) *store.Store {
	t.Helper()
	st, err := store.NewStore(kernel.NewUUID(), name, kernel.NewUUID(), "CODE42")
	require.NoError(t, err)
	return st
}

func completedOrder(t *testing.T, storeID kernel.UUID, purchasedAt time.Time, total string, names ...string) *order.Order {
	t.Helper()
	orderID := kernel.NewUUID()
	items := make([]*order.OrderItem, 0, len(names))
	for _, name := range names {
		item, err := order.RestoreOrderItem(orderID, storeID, order.ItemDetails{
			ProductID: kernel.NewUUID(),
			Name:      name,
			Quantity:  1,
			UnitPrice: kernel.MustMoney(total),
			Discount:  kernel.ZeroPercent(),
		}, order.ItemDelivered)
		require.NoError(t, err)
		items = append(items, item)
	}
	o, err := order.RestoreOrder(orderID, kernel.NewUUID(), storeID, "Tarjeta", "", purchasedAt,
		order.Completed, kernel.MustMoney(total), items)
	require.NoError(t, err)
	return o
}
