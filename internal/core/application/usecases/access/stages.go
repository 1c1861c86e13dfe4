// Package access loads what StageResolver needs from the repositories, so
// commands and queries authorize callers the same way.
package access

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// Grant is the outcome of a successful resolution.
type Grant struct {
	Store  *store.Store
	Stages store.StageSet
}

type StageLoader struct {
	resolver services.StageResolver
}

func NewStageLoader() StageLoader {
	return StageLoader{resolver: services.NewStageResolver()}
}

// Load resolves userID's stages at storeID. An unknown store yields
// errs.ErrObjectNotFound; non-members store.ErrUnauthorized; members without a
// role store.ErrPendingRoleAssignment.
func (l StageLoader) Load(
	ctx context.Context,
	stores ports.StoreRepository,
	members ports.MembershipRepository,
	storeID, userID kernel.UUID,
) (Grant, error) {
	st, err := stores.Get(ctx, storeID)
	if err != nil {
		return Grant{}, err
	}

	if st.IsOwner(userID) {
		stages, err := l.resolver.Resolve(st, userID, nil, nil)
		return Grant{Store: st, Stages: stages}, err
	}

	membership, err := members.Get(ctx, storeID, userID)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return Grant{}, err
		}
		membership = nil
	}

	var role *store.Role
	if membership != nil && !membership.IsPending() {
		role, err = stores.GetRole(ctx, storeID, *membership.RoleID())
		if err != nil {
			if !errors.Is(err, errs.ErrObjectNotFound) {
				return Grant{}, err
			}
			role = nil
		}
	}

	stages, err := l.resolver.Resolve(st, userID, membership, role)
	if err != nil {
		return Grant{Store: st}, err
	}
	return Grant{Store: st, Stages: stages}, nil
}

// Require loads the grant and fails with a *store.UnauthorizedError unless it
// holds at least one of the given stages.
func (l StageLoader) Require(
	ctx context.Context,
	stores ports.StoreRepository,
	members ports.MembershipRepository,
	storeID, userID kernel.UUID,
	anyOf ...store.Stage,
) (Grant, error) {
	grant, err := l.Load(ctx, stores, members, storeID, userID)
	if err != nil {
		return grant, err
	}
	for _, s := range anyOf {
		if grant.Stages.Has(s) {
			return grant, nil
		}
	}

	required := store.StageUnknown
	if len(anyOf) > 0 {
		required = anyOf[0]
	}
	return grant, store.NewUnauthorizedError(userID, storeID, required)
}

// RequireOwner fails with store.ErrUnauthorized unless userID owns the store.
func RequireOwner(ctx context.Context, stores ports.StoreRepository, storeID, userID kernel.UUID) (*store.Store, error) {
	st, err := stores.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if !st.IsOwner(userID) {
		return nil, store.NewUnauthorizedError(userID, storeID, store.Administrador)
	}
	return st, nil
}
