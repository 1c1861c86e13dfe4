package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

const paymentPath = "payment"

// CompletePaymentCommandHandler creates the order of a single store once its
// payment is confirmed. The amount must equal the order total; otherwise
// nothing is written and the cart stays as it was.
type CompletePaymentCommandHandler struct {
	placer   storeOrderPlacer
	notifier *OrderNotifier
}

func NewCompletePaymentCommandHandler(uowFactory CheckoutUoWFactory, notifier *OrderNotifier) CompletePaymentCommandHandler {
	return CompletePaymentCommandHandler{
		placer:   newStoreOrderPlacer(uowFactory),
		notifier: notifier,
	}
}

func (h *CompletePaymentCommandHandler) Handle(ctx context.Context, cmd CompletePaymentCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	amount := cmd.Amount()
	placed, err := h.placer.place(ctx, storeOrder{
		clientID:         cmd.ClientID(),
		storeID:          cmd.StoreID(),
		paymentMethod:    cmd.PaymentMethod(),
		paymentReference: cmd.PaymentReference(),
		expectedTotal:    &amount,
	})
	if err != nil {
		h.notifier.OrderFailed(paymentPath)
		return nil, err
	}

	h.notifier.OrderPlaced(ctx, paymentPath, placed)
	return placed, nil
}
