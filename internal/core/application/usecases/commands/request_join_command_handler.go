package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/pkg/errs"
)

// RequestJoinCommandHandler records join requests for the owner to approve.
// Repeating a pending request is a no-op; owners and existing members get
// errs.ErrObjectExists.
type RequestJoinCommandHandler struct {
	uowFactory MembershipUoWFactory
}

func NewRequestJoinCommandHandler(uowFactory MembershipUoWFactory) RequestJoinCommandHandler {
	return RequestJoinCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RequestJoinCommandHandler) Handle(ctx context.Context, cmd RequestJoinCommand) (*store.JoinRequest, error) {
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

	st, err := storeRepo.GetByJoinCode(ctx, cmd.JoinCode())
	if err != nil {
		return nil, err
	}
	if st.IsOwner(cmd.UserID()) {
		return nil, errs.NewObjectExistsError("membership", cmd.UserID().String())
	}

	_, err = membershipRepo.Get(ctx, st.ID(), cmd.UserID())
	switch {
	case err == nil:
		return nil, errs.NewObjectExistsError("membership", cmd.UserID().String())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	existing, err := membershipRepo.GetJoinRequest(ctx, st.ID(), cmd.UserID())
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	request, err := store.NewJoinRequest(st.ID(), cmd.UserID(), time.Now())
	if err != nil {
		return nil, err
	}
	if err = membershipRepo.AddJoinRequest(ctx, request); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return request, nil
}
