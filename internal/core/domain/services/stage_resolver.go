package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/pkg/errs"
)

// StageResolver computes the stages a user may act on at a store.
//
// Resolution order:
//  1. the store owner holds Administrador, hence every stage, without a role
//  2. a user without membership gets ErrUnauthorized
//  3. a member without role gets ErrPendingRoleAssignment
//  4. otherwise the role's permissions, with Administrador expanded to every stage
type StageResolver struct{}

func NewStageResolver() StageResolver {
	return StageResolver{}
}

// Resolve applies the resolution order. membership and role may be nil; a
// role that is missing or belongs to another store grants nothing.
func (StageResolver) Resolve(
	st *store.Store,
	userID kernel.UUID,
	membership *store.Membership,
	role *store.Role,
) (store.StageSet, error) {
	if err := st.Validate(); err != nil {
		return 0, err
	}
	if err := userID.Validate(); err != nil {
		return 0, err
	}

	if st.IsOwner(userID) {
		return store.AllStages(), nil
	}

	if membership == nil || !membership.StoreID().IsEqual(st.ID()) || !membership.UserID().IsEqual(userID) {
		return 0, store.NewUnauthorizedError(userID, st.ID(), store.StageUnknown)
	}

	if membership.IsPending() {
		return 0, store.NewPendingRoleAssignmentError(userID, st.ID())
	}

	if role == nil || !role.StoreID().IsEqual(st.ID()) || !role.ID().IsEqual(*membership.RoleID()) {
		return 0, nil
	}

	return role.Permissions().Expand(), nil
}

// Authorize resolves the stages and checks that required is among them.
func (r StageResolver) Authorize(
	st *store.Store,
	userID kernel.UUID,
	membership *store.Membership,
	role *store.Role,
	required store.Stage,
) (store.StageSet, error) {
	if err := required.Validate(); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("required stage", err)
	}

	stages, err := r.Resolve(st, userID, membership, role)
	if err != nil {
		return 0, err
	}
	if !stages.Has(required) {
		return stages, store.NewUnauthorizedError(userID, st.ID(), required)
	}
	return stages, nil
}
