package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// storeOrder describes the order one store should receive.
type storeOrder struct {
	clientID         kernel.UUID
	storeID          kernel.UUID
	paymentMethod    string
	paymentReference string
	// expectedTotal, when set, must equal the total of the store's cart.
	expectedTotal *kernel.Money
}

// storeOrderPlacer is the atomic unit shared by checkout and payment
// completion: in one transaction it re-reads the store's cart entries, writes
// the order with its items and deletes exactly those entries. An entry merged
// after the read fails the delete.
type storeOrderPlacer struct {
	uowFactory CheckoutUoWFactory
	splitter   services.OrderSplitter
	now        func() time.Time
}

func newStoreOrderPlacer(uowFactory CheckoutUoWFactory) storeOrderPlacer {
	return storeOrderPlacer{
		uowFactory: uowFactory,
		splitter:   services.NewOrderSplitter(),
		now:        time.Now,
	}
}

func (p storeOrderPlacer) place(ctx context.Context, so storeOrder) (*order.Order, error) {
	uow := p.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	orderRepo := uow.OrderRepository()

	entries, err := cartRepo.ListByClientAndStore(ctx, so.clientID, so.storeID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("store %s: %w", so.storeID, ErrCartIsEmpty)
	}

	group := services.StoreGroup{StoreID: so.storeID, Entries: entries}
	if so.expectedTotal != nil && !group.Total().IsEqual(*so.expectedTotal) {
		return nil, &PaymentAmountMismatchError{StoreID: so.storeID, Expected: group.Total(), Paid: *so.expectedTotal}
	}

	placed, err := p.splitter.BuildOrder(kernel.NewUUID(), so.clientID, group, so.paymentMethod, p.now())
	if err != nil {
		return nil, err
	}
	if so.paymentReference != "" {
		if err = placed.AttachPaymentReference(so.paymentReference); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = cartRepo.RemoveEntries(ctx, so.clientID, entries); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
