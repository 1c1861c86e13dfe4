package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/store"

	"github.com/stretchr/testify/require"
)

var (
	storeA = kernel.MustUUIDFromString("11111111-1111-4111-8111-111111111111")
	storeB = kernel.MustUUIDFromString("22222222-2222-4222-8222-222222222222")
)

func itemDetails(productID kernel.UUID, qty int, price string, discount int64) order.ItemDetails {
	return order.ItemDetails{
		ProductID: productID,
		Name:      "Producto " + productID.String()[:4],
		Quantity:  qty,
		UnitPrice: kernel.MustMoney(price),
		Discount:  kernel.MustPercent(discount),
	}
}

func newCartEntry(t *testing.T, clientID, storeID kernel.UUID, qty int, price string, discount int64) *cart.Entry {
	t.Helper()
	e, err := cart.NewCartEntry(clientID, storeID, itemDetails(kernel.NewUUID(), qty, price, discount))
	require.NoError(t, err)
	return e
}

func newStore(t *testing.T, id, ownerID kernel.UUID) *store.Store {
	t.Helper()
	st, err := store.NewStore(id, "Tienda", ownerID, "JOIN-"+id.String()[:4])
	require.NoError(t, err)
	return st
}

func newRole(t *testing.T, storeID, ownerID kernel.UUID, stages ...store.Stage) *store.Role {
	t.Helper()
	r, err := store.NewRole(kernel.NewUUID(), storeID, "Rol", "", "#336699", store.NewStageSet(stages...), ownerID)
	require.NoError(t, err)
	return r
}

func newMember(t *testing.T, storeID, userID kernel.UUID, role *store.Role) *store.Membership {
	t.Helper()
	var roleID *kernel.UUID
	if role != nil {
		id := role.ID()
		roleID = &id
	}
	m, err := store.RestoreMembership(storeID, userID, roleID, time.Now())
	require.NoError(t, err)
	return m
}

// orderWithItems restores an order of storeID whose items have the given
// statuses, with the aggregate status projected from them.
func orderWithItems(t *testing.T, storeID kernel.UUID, statuses ...order.ItemStatus) *order.Order {
	t.Helper()
	orderID := kernel.NewUUID()
	items := make([]*order.OrderItem, 0, len(statuses))
	for _, s := range statuses {
		item, err := order.RestoreOrderItem(orderID, storeID, itemDetails(kernel.NewUUID(), 1, "12.50", 0), s)
		require.NoError(t, err)
		items = append(items, item)
	}

	purchasedAt := time.Date(2024, time.March, 14, 15, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(orderID, kernel.NewUUID(), storeID, order.DefaultPaymentMethod, "",
		purchasedAt, order.ProjectStatus(statuses), kernel.MustMoney("12.50").Times(len(statuses)).Round(), items)
	require.NoError(t, err)
	return o
}
