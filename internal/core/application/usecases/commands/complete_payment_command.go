package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCompletePaymentCommandIsNotConstructed = errors.New(
	"CompletePaymentCommand must be created via NewCompletePaymentCommand constructor",
)

// CompletePaymentCommand confirms that the client paid amount for the cart
// entries of one store. paymentReference is the provider's confirmation token.
type CompletePaymentCommand struct { //nolint:recvcheck //using for validation
	clientID         kernel.UUID
	storeID          kernel.UUID
	amount           kernel.Money
	paymentMethod    string
	paymentReference string

	guard guard.ConstructorGuard
}

func NewCompletePaymentCommand(
	clientID, storeID kernel.UUID,
	amount kernel.Money,
	paymentMethod, paymentReference string,
) (CompletePaymentCommand, error) {
	cmd := CompletePaymentCommand{
		paymentMethod: strings.TrimSpace(paymentMethod),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		clientID.Validate(),
		storeID.Validate(),
		amount.Validate(),
		cmd.setPaymentReference(paymentReference),
	); err != nil {
		return CompletePaymentCommand{}, err
	}

	cmd.clientID = clientID
	cmd.storeID = storeID
	cmd.amount = amount
	return cmd, nil
}

func (c CompletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCompletePaymentCommandIsNotConstructed)
}

func (c CompletePaymentCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c CompletePaymentCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c CompletePaymentCommand) Amount() kernel.Money {
	return c.amount
}

func (c CompletePaymentCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c CompletePaymentCommand) PaymentReference() string {
	return c.paymentReference
}

func (c *CompletePaymentCommand) setPaymentReference(reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return errs.NewValueIsRequiredError("paymentReference")
	}

	c.paymentReference = reference
	return nil
}
