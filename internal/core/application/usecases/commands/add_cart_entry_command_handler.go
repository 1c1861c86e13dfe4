package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
)

// AddCartEntryCommandHandler upserts cart entries keyed by (client, store, product).
// Repeated selections add up in the repository, never in memory.
type AddCartEntryCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewAddCartEntryCommandHandler(uowFactory CartUoWFactory) AddCartEntryCommandHandler {
	return AddCartEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the entry as stored after the upsert.
func (h *AddCartEntryCommandHandler) Handle(ctx context.Context, cmd AddCartEntryCommand) (*cart.Entry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	added, err := cart.NewCartEntry(cmd.ClientID(), cmd.StoreID(), cmd.Details())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	if err = cartRepo.Save(ctx, added); err != nil {
		return nil, err
	}

	entry, err := cartRepo.Get(ctx, cmd.ClientID(), cmd.StoreID(), cmd.Details().ProductID)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}
