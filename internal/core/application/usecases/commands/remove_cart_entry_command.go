package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveCartEntryCommandIsNotConstructed = errors.New(
	"RemoveCartEntryCommand must be created via NewRemoveCartEntryCommand constructor",
)

// RemoveCartEntryCommand drops one product from a client's cart.
type RemoveCartEntryCommand struct { //nolint:recvcheck //using for validation
	clientID  kernel.UUID
	storeID   kernel.UUID
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCartEntryCommand(clientID, storeID, productID kernel.UUID) (RemoveCartEntryCommand, error) {
	if err := errors.Join(clientID.Validate(), storeID.Validate(), productID.Validate()); err != nil {
		return RemoveCartEntryCommand{}, err
	}

	return RemoveCartEntryCommand{
		clientID:  clientID,
		storeID:   storeID,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveCartEntryCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartEntryCommandIsNotConstructed)
}

func (c RemoveCartEntryCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c RemoveCartEntryCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c RemoveCartEntryCommand) ProductID() kernel.UUID {
	return c.productID
}
