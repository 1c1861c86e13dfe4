package commands

import (
	"context"
)

type RemoveCartEntryCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewRemoveCartEntryCommandHandler(uowFactory CartUoWFactory) RemoveCartEntryCommandHandler {
	return RemoveCartEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the entry; a missing entry yields errs.ErrObjectNotFound.
func (h *RemoveCartEntryCommandHandler) Handle(ctx context.Context, cmd RemoveCartEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CartRepository().Remove(ctx, cmd.ClientID(), cmd.StoreID(), cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
