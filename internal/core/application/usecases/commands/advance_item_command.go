package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAdvanceItemCommandIsNotConstructed = errors.New(
	"AdvanceItemCommand must be created via NewAdvanceItemCommand constructor",
)

// AdvanceItemCommand asks to move one order item to target on behalf of a worker.
//
// Example:
//
//	cmd, err := NewAdvanceItemCommand(userID, storeID, orderID, productID, order.ItemPreparing)
//	if err != nil {
//	    return err
//	}
//	item, err := handler.Handle(ctx, cmd)
type AdvanceItemCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	storeID   kernel.UUID
	orderID   kernel.UUID
	productID kernel.UUID
	target    order.ItemStatus

	guard guard.ConstructorGuard
}

func NewAdvanceItemCommand(
	userID, storeID, orderID, productID kernel.UUID,
	target order.ItemStatus,
) (AdvanceItemCommand, error) {
	cmd := AdvanceItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userID.Validate(),
		storeID.Validate(),
		orderID.Validate(),
		productID.Validate(),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceItemCommand{}, err
	}

	cmd.userID = userID
	cmd.storeID = storeID
	cmd.orderID = orderID
	cmd.productID = productID
	return cmd, nil
}

func (c AdvanceItemCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceItemCommandIsNotConstructed)
}

func (c AdvanceItemCommand) UserID() kernel.UUID {
	return c.userID
}

func (c AdvanceItemCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c AdvanceItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AdvanceItemCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c AdvanceItemCommand) Target() order.ItemStatus {
	return c.target
}

func (c *AdvanceItemCommand) setTarget(target order.ItemStatus) error {
	if err := target.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("target", err)
	}

	c.target = target
	return nil
}
