package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/access"
	"fulfillment/internal/core/domain/model/store"
)

// ApproveWorkerCommandHandler lets the store owner accept a join request.
// The new member waits for a role before seeing any stage.
type ApproveWorkerCommandHandler struct {
	uowFactory MembershipUoWFactory
}

func NewApproveWorkerCommandHandler(uowFactory MembershipUoWFactory) ApproveWorkerCommandHandler {
	return ApproveWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ApproveWorkerCommandHandler) Handle(ctx context.Context, cmd ApproveWorkerCommand) (*store.Membership, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	storeRepo := uow.StoreRepository()
	membershipRepo := uow.MembershipRepository()

	if _, err := access.RequireOwner(ctx, storeRepo, cmd.StoreID(), cmd.OwnerID()); err != nil {
		return nil, err
	}

	request, err := membershipRepo.GetJoinRequest(ctx, cmd.StoreID(), cmd.UserID())
	if err != nil {
		return nil, err
	}

	membership, err := store.NewMembership(request.StoreID(), request.UserID(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = membershipRepo.RemoveJoinRequest(ctx, cmd.StoreID(), cmd.UserID()); err != nil {
		return nil, err
	}
	if err = membershipRepo.Add(ctx, membership); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return membership, nil
}

type RemoveWorkerCommandHandler struct {
	uowFactory MembershipUoWFactory
}

func NewRemoveWorkerCommandHandler(uowFactory MembershipUoWFactory) RemoveWorkerCommandHandler {
	return RemoveWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the membership; a user who is not a member yields errs.ErrObjectNotFound.
func (h *RemoveWorkerCommandHandler) Handle(ctx context.Context, cmd RemoveWorkerCommand) error {
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

	if _, err := access.RequireOwner(ctx, uow.StoreRepository(), cmd.StoreID(), cmd.OwnerID()); err != nil {
		return err
	}

	if err := uow.MembershipRepository().Remove(ctx, cmd.StoreID(), cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
