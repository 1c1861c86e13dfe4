package commands

import (
	"context"

	"fulfillment/internal/core/application/usecases/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/store"
)

type CreateRoleCommandHandler struct {
	uowFactory MembershipUoWFactory
}

func NewCreateRoleCommandHandler(uowFactory MembershipUoWFactory) CreateRoleCommandHandler {
	return CreateRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the role; only the store owner may do so.
func (h *CreateRoleCommandHandler) Handle(ctx context.Context, cmd CreateRoleCommand) (*store.Role, error) {
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
	if _, err := access.RequireOwner(ctx, storeRepo, cmd.StoreID(), cmd.OwnerID()); err != nil {
		return nil, err
	}

	role, err := store.NewRole(
		kernel.NewUUID(),
		cmd.StoreID(),
		cmd.Name(),
		cmd.Description(),
		cmd.ColorHex(),
		cmd.Permissions(),
		cmd.OwnerID(),
	)
	if err != nil {
		return nil, err
	}

	if err = storeRepo.AddRole(ctx, role); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return role, nil
}

// AssignRoleCommandHandler changes which role a worker holds. The new stages
// apply to the worker's next request.
type AssignRoleCommandHandler struct {
	uowFactory MembershipUoWFactory
}

func NewAssignRoleCommandHandler(uowFactory MembershipUoWFactory) AssignRoleCommandHandler {
	return AssignRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *AssignRoleCommandHandler) Handle(ctx context.Context, cmd AssignRoleCommand) (*store.Membership, error) {
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

	membership, err := membershipRepo.Get(ctx, cmd.StoreID(), cmd.UserID())
	if err != nil {
		return nil, err
	}

	if roleID := cmd.RoleID(); roleID != nil {
		if _, err = storeRepo.GetRole(ctx, cmd.StoreID(), *roleID); err != nil {
			return nil, err
		}
	}

	if err = membership.AssignRole(cmd.RoleID()); err != nil {
		return nil, err
	}
	if err = membershipRepo.Update(ctx, membership); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return membership, nil
}
