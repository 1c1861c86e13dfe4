package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/store"
)

// StoreRepository persists stores and their roles. Store profile editing is
// handled elsewhere; Add exists for provisioning.
type StoreRepository interface {
	Add(ctx context.Context, s *store.Store) error
	Get(ctx context.Context, id kernel.UUID) (*store.Store, error)
	GetByJoinCode(ctx context.Context, joinCode string) (*store.Store, error)
	ListIDs(ctx context.Context) ([]kernel.UUID, error)

	AddRole(ctx context.Context, role *store.Role) error
	GetRole(ctx context.Context, storeID, roleID kernel.UUID) (*store.Role, error)
	ListRoles(ctx context.Context, storeID kernel.UUID) ([]*store.Role, error)
}

// MembershipRepository persists worker memberships and pending join requests.
type MembershipRepository interface {
	// Get yields errs.ErrObjectNotFound for users that are not members.
	Get(ctx context.Context, storeID, userID kernel.UUID) (*store.Membership, error)
	Add(ctx context.Context, m *store.Membership) error
	Update(ctx context.Context, m *store.Membership) error
	Remove(ctx context.Context, storeID, userID kernel.UUID) error

	AddJoinRequest(ctx context.Context, r *store.JoinRequest) error
	GetJoinRequest(ctx context.Context, storeID, userID kernel.UUID) (*store.JoinRequest, error)
	RemoveJoinRequest(ctx context.Context, storeID, userID kernel.UUID) error
}
