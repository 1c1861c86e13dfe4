package services

import (
	"slices"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// StoreGroup is the part of a cart that becomes one store's order.
type StoreGroup struct {
	StoreID kernel.UUID
	Entries []*cart.Entry
}

// Total is the rounded total the resulting order will carry.
func (g StoreGroup) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, e := range g.Entries {
		total = total.Add(e.LineTotal())
	}
	return total.Round()
}

// OrderSplitter converts a multi-store cart into one order per store.
type OrderSplitter struct{}

func NewOrderSplitter() OrderSplitter {
	return OrderSplitter{}
}

// GroupByStore partitions entries by store. Groups are ordered by store ID
// and entries by product ID, so repeated checkouts visit stores in the same order.
func (OrderSplitter) GroupByStore(entries []*cart.Entry) []StoreGroup {
	byStore := make(map[kernel.UUID][]*cart.Entry)
	for _, e := range entries {
		byStore[e.StoreID()] = append(byStore[e.StoreID()], e)
	}

	groups := make([]StoreGroup, 0, len(byStore))
	for storeID, storeEntries := range byStore {
		slices.SortFunc(storeEntries, func(a, b *cart.Entry) int {
			return a.ProductID().Compare(b.ProductID())
		})
		groups = append(groups, StoreGroup{StoreID: storeID, Entries: storeEntries})
	}
	slices.SortFunc(groups, func(a, b StoreGroup) int {
		return a.StoreID.Compare(b.StoreID)
	})
	return groups
}

// BuildOrder creates the Paid order of one store group; every item starts RECEIVED.
func (OrderSplitter) BuildOrder(
	orderID, clientID kernel.UUID,
	group StoreGroup,
	paymentMethod string,
	purchasedAt time.Time,
) (*order.Order, error) {
	if len(group.Entries) == 0 {
		return nil, errs.NewValueIsRequiredError("cart entries")
	}

	lines := make([]order.ItemDetails, 0, len(group.Entries))
	for _, e := range group.Entries {
		if !e.ClientID().IsEqual(clientID) || !e.StoreID().IsEqual(group.StoreID) {
			return nil, errs.NewValueIsInvalidError("cart entry")
		}
		lines = append(lines, e.Details())
	}

	return order.NewOrder(orderID, clientID, group.StoreID, paymentMethod, purchasedAt, lines)
}
