package store

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrMembershipIsNotConstructed  = errors.New("Membership must be created via NewMembership or RestoreMembership")
	ErrJoinRequestIsNotConstructed = errors.New("JoinRequest must be created via NewJoinRequest")
)

// Membership associates a worker with a store. A nil roleID marks a pending
// worker: approved by the owner but without any stage yet.
type Membership struct {
	storeID  kernel.UUID
	userID   kernel.UUID
	roleID   *kernel.UUID
	joinedAt time.Time

	guard guard.ConstructorGuard
}

// NewMembership creates a pending membership, as produced by an approved join request.
func NewMembership(storeID, userID kernel.UUID, joinedAt time.Time) (*Membership, error) {
	return RestoreMembership(storeID, userID, nil, joinedAt)
}

func RestoreMembership(storeID, userID kernel.UUID, roleID *kernel.UUID, joinedAt time.Time) (*Membership, error) {
	m := &Membership{storeID: storeID, userID: userID, joinedAt: joinedAt, guard: guard.NewConstructorGuard()}

	var timeErr error
	if joinedAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("joinedAt")
	}
	if err := errors.Join(storeID.Validate(), userID.Validate(), m.AssignRole(roleID), timeErr); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Membership) Validate() error {
	if m == nil {
		return ErrMembershipIsNotConstructed
	}
	return m.guard.Validate(ErrMembershipIsNotConstructed)
}

func (m *Membership) StoreID() kernel.UUID {
	return m.storeID
}

func (m *Membership) UserID() kernel.UUID {
	return m.userID
}

// RoleID returns nil while the membership is pending.
func (m *Membership) RoleID() *kernel.UUID {
	if m.roleID == nil {
		return nil
	}
	id := *m.roleID
	return &id
}

func (m *Membership) JoinedAt() time.Time {
	return m.joinedAt
}

func (m *Membership) IsPending() bool {
	return m.roleID == nil
}

// AssignRole sets the role; nil puts the worker back into the pending state.
func (m *Membership) AssignRole(roleID *kernel.UUID) error {
	if roleID == nil {
		m.roleID = nil
		return nil
	}
	if err := roleID.Validate(); err != nil {
		return err
	}
	id := *roleID
	m.roleID = &id
	return nil
}

// JoinRequest is a worker's request to join a store, awaiting the owner's approval.
type JoinRequest struct {
	storeID     kernel.UUID
	userID      kernel.UUID
	requestedAt time.Time

	guard guard.ConstructorGuard
}

func NewJoinRequest(storeID, userID kernel.UUID, requestedAt time.Time) (*JoinRequest, error) {
	var timeErr error
	if requestedAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("requestedAt")
	}
	if err := errors.Join(storeID.Validate(), userID.Validate(), timeErr); err != nil {
		return nil, err
	}
	return &JoinRequest{storeID: storeID, userID: userID, requestedAt: requestedAt, guard: guard.NewConstructorGuard()}, nil
}

func (r *JoinRequest) Validate() error {
	if r == nil {
		return ErrJoinRequestIsNotConstructed
	}
	return r.guard.Validate(ErrJoinRequestIsNotConstructed)
}

func (r *JoinRequest) StoreID() kernel.UUID {
	return r.storeID
}

func (r *JoinRequest) UserID() kernel.UUID {
	return r.userID
}

func (r *JoinRequest) RequestedAt() time.Time {
	return r.requestedAt
}
