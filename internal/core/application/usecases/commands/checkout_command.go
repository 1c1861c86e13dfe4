package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand turns a client's whole cart into one order per store.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	clientID      kernel.UUID
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand accepts an empty payment method, orders then carry order.DefaultPaymentMethod.
func NewCheckoutCommand(clientID kernel.UUID, paymentMethod string) (CheckoutCommand, error) {
	if err := clientID.Validate(); err != nil {
		return CheckoutCommand{}, err
	}

	return CheckoutCommand{
		clientID:      clientID,
		paymentMethod: strings.TrimSpace(paymentMethod),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c CheckoutCommand) PaymentMethod() string {
	return c.paymentMethod
}
