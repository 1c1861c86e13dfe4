package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntry(t *testing.T, client, store, product kernel.UUID, qty int, price string, discount int64) *cart.Entry {
	t.Helper()
	e, err := cart.NewCartEntry(client, store, order.ItemDetails{
		ProductID: product,
		Name:      "producto",
		Quantity:  qty,
		UnitPrice: kernel.MustMoney(price),
		Discount:  kernel.MustPercent(discount),
	})
	require.NoError(t, err)
	return e
}

func TestOrderSplitter_SingleStoreScenario(t *testing.T) {
	client, s1 := kernel.NewUUID(), kernel.NewUUID()
	p1, p2 := kernel.NewUUID(), kernel.NewUUID()
	splitter := services.NewOrderSplitter()

	groups := splitter.GroupByStore([]*cart.Entry{
		newEntry(t, client, s1, p1, 2, "10.00", 0),
		newEntry(t, client, s1, p2, 1, "20.00", 50),
	})
	require.Len(t, groups, 1)
	assert.Equal(t, "30.00", groups[0].Total().String())

	o, err := splitter.BuildOrder(kernel.NewUUID(), client, groups[0], "", time.Now())

	require.NoError(t, err)
	assert.Equal(t, "30.00", o.Total().String())
	assert.True(t, o.StoreID().IsEqual(s1))
	require.Len(t, o.Items(), 2)
	for _, item := range o.Items() {
		assert.Equal(t, order.ItemReceived, item.Status())
	}
}

func TestOrderSplitter_GroupByStore_Deterministic(t *testing.T) {
	client := kernel.NewUUID()
	a := kernel.MustUUIDFromString("00000000-0000-0000-0000-00000000000a")
	b := kernel.MustUUIDFromString("00000000-0000-0000-0000-00000000000b")

	groups := services.NewOrderSplitter().GroupByStore([]*cart.Entry{
		newEntry(t, client, b, kernel.NewUUID(), 1, "1", 0),
		newEntry(t, client, a, kernel.NewUUID(), 1, "1", 0),
		newEntry(t, client, b, kernel.NewUUID(), 1, "1", 0),
	})

	require.Len(t, groups, 2)
	assert.True(t, groups[0].StoreID.IsEqual(a))
	assert.Len(t, groups[0].Entries, 1)
	assert.True(t, groups[1].StoreID.IsEqual(b))
	assert.Len(t, groups[1].Entries, 2)
}

func TestOrderSplitter_BuildOrder_RejectsForeignEntries(t *testing.T) {
	client, s1 := kernel.NewUUID(), kernel.NewUUID()
	group := services.StoreGroup{
		StoreID: s1,
		Entries: []*cart.Entry{newEntry(t, kernel.NewUUID(), s1, kernel.NewUUID(), 1, "1", 0)},
	}

	_, err := services.NewOrderSplitter().BuildOrder(kernel.NewUUID(), client, group, "", time.Now())
	require.Error(t, err)

	_, err = services.NewOrderSplitter().BuildOrder(kernel.NewUUID(), client, services.StoreGroup{StoreID: s1}, "", time.Now())
	require.Error(t, err)
}
