package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAddCartEntryCommandIsNotConstructed = errors.New(
	"AddCartEntryCommand must be created via NewAddCartEntryCommand constructor",
)

// AddCartEntryCommand puts a product of one store into a client's cart.
// Adding a product that is already in the cart increases its quantity.
//
// Example:
//
//	cmd, err := NewAddCartEntryCommand(clientID, storeID, order.ItemDetails{
//	    ProductID: productID,
//	    Name:      "Empanada de pipián",
//	    Quantity:  2,
//	    UnitPrice: kernel.MustMoney("3500"),
//	    Discount:  kernel.ZeroPercent(),
//	})
type AddCartEntryCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	storeID  kernel.UUID
	details  order.ItemDetails

	guard guard.ConstructorGuard
}

func NewAddCartEntryCommand(clientID, storeID kernel.UUID, details order.ItemDetails) (AddCartEntryCommand, error) {
	cmd := AddCartEntryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(clientID, storeID),
		cmd.setDetails(details),
	); err != nil {
		return AddCartEntryCommand{}, err
	}

	return cmd, nil
}

func (c AddCartEntryCommand) Validate() error {
	return c.guard.Validate(ErrAddCartEntryCommandIsNotConstructed)
}

func (c AddCartEntryCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c AddCartEntryCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c AddCartEntryCommand) Details() order.ItemDetails {
	return c.details
}

func (c *AddCartEntryCommand) setIDs(clientID, storeID kernel.UUID) error {
	if err := errors.Join(clientID.Validate(), storeID.Validate()); err != nil {
		return err
	}

	c.clientID = clientID
	c.storeID = storeID
	return nil
}

func (c *AddCartEntryCommand) setDetails(details order.ItemDetails) error {
	var quantityErr error
	if details.Quantity < 1 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", details.Quantity, 1, "unbounded")
	}
	if err := errors.Join(
		details.ProductID.Validate(),
		details.UnitPrice.Validate(),
		details.Discount.Validate(),
		quantityErr,
	); err != nil {
		return err
	}

	details.Name = strings.TrimSpace(details.Name)
	details.Description = strings.TrimSpace(details.Description)
	c.details = details
	return nil
}
