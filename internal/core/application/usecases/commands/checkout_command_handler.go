package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"go.uber.org/multierr"
)

const checkoutPath = "checkout"

// CheckoutResult lists the committed orders, one per succeeded store.
type CheckoutResult struct {
	Orders          []*order.Order
	SucceededStores []kernel.UUID
	FailedStores    []kernel.UUID
}

// CheckoutCommandHandler splits the cart by store and places every store's
// order in its own transaction. A failing store does not undo the others:
// the handler then returns the partial result together with a
// *PartialCheckoutFailureError.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, notifier)
//	cmd, _ := NewCheckoutCommand(clientID, "Tarjeta")
//
//	result, err := handler.Handle(ctx, cmd)
//	var partial *PartialCheckoutFailureError
//	if errors.As(err, &partial) {
//	    // result.Orders holds the orders that were created
//	}
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	placer     storeOrderPlacer
	splitter   services.OrderSplitter
	notifier   *OrderNotifier
}

func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory, notifier *OrderNotifier) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		placer:     newStoreOrderPlacer(uowFactory),
		splitter:   services.NewOrderSplitter(),
		notifier:   notifier,
	}
}

func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	entries, err := h.uowFactory.Create().CartRepository().ListByClient(ctx, cmd.ClientID())
	if err != nil {
		return CheckoutResult{}, err
	}
	if len(entries) == 0 {
		return CheckoutResult{}, ErrCartIsEmpty
	}

	var (
		result CheckoutResult
		causes error
	)
	for _, group := range h.splitter.GroupByStore(entries) {
		placed, placeErr := h.placer.place(ctx, storeOrder{
			clientID:      cmd.ClientID(),
			storeID:       group.StoreID,
			paymentMethod: cmd.PaymentMethod(),
		})
		if placeErr != nil {
			result.FailedStores = append(result.FailedStores, group.StoreID)
			causes = multierr.Append(causes, placeErr)
			h.notifier.OrderFailed(checkoutPath)
			continue
		}

		result.Orders = append(result.Orders, placed)
		result.SucceededStores = append(result.SucceededStores, group.StoreID)
		h.notifier.OrderPlaced(ctx, checkoutPath, placed)
	}

	if len(result.FailedStores) > 0 {
		return result, NewPartialCheckoutFailureError(result.SucceededStores, result.FailedStores, causes)
	}
	return result, nil
}
