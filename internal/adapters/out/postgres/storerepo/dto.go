// Package storerepo persists stores, their roles, worker memberships and
// pending join requests.
package storerepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/store"

	"github.com/google/uuid"
)

type StoreDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null;default:''"`
	OwnerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	JoinCode string    `gorm:"type:varchar(32);not null;uniqueIndex"`
}

func (StoreDTO) TableName() string {
	return "stores"
}

// RoleDTO stores the permissions as the StageSet bitmask.
type RoleDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(128);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	ColorHex    string    `gorm:"type:varchar(7);not null"`
	Permissions int       `gorm:"type:smallint;not null"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
}

func (RoleDTO) TableName() string {
	return "roles"
}

// MembershipDTO links a worker to a store. A NULL role is a pending member.
type MembershipDTO struct {
	StoreID  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RoleID   *uuid.UUID `gorm:"type:uuid;index"`
	JoinedAt time.Time  `gorm:"not null"`
}

func (MembershipDTO) TableName() string {
	return "memberships"
}

type JoinRequestDTO struct {
	StoreID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestedAt time.Time `gorm:"not null"`
}

func (JoinRequestDTO) TableName() string {
	return "join_requests"
}

func storeFromDomain(s *store.Store) StoreDTO {
	return StoreDTO{
		ID:       s.ID().Bytes(),
		Name:     s.Name(),
		OwnerID:  s.OwnerID().Bytes(),
		JoinCode: s.JoinCode(),
	}
}

func storeToDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}
	return store.NewStore(id, dto.Name, ownerID, dto.JoinCode)
}

func roleFromDomain(r *store.Role) RoleDTO {
	return RoleDTO{
		ID:          r.ID().Bytes(),
		StoreID:     r.StoreID().Bytes(),
		Name:        r.Name(),
		Description: r.Description(),
		ColorHex:    r.ColorHex(),
		Permissions: int(r.Permissions()),
		CreatedBy:   r.CreatedBy().Bytes(),
	}
}

func roleToDomain(dto RoleDTO) (*store.Role, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}
	return store.NewRole(id, storeID, dto.Name, dto.Description, dto.ColorHex,
		store.StageSet(dto.Permissions), createdBy)
}

func membershipFromDomain(m *store.Membership) MembershipDTO {
	var roleID *uuid.UUID
	if id := m.RoleID(); id != nil {
		raw := id.Bytes()
		roleID = &raw
	}
	return MembershipDTO{
		StoreID:  m.StoreID().Bytes(),
		UserID:   m.UserID().Bytes(),
		RoleID:   roleID,
		JoinedAt: m.JoinedAt().UTC(),
	}
}

func membershipToDomain(dto MembershipDTO) (*store.Membership, error) {
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var roleID *kernel.UUID
	if dto.RoleID != nil {
		id, roleErr := kernel.UUIDFromBytes((*dto.RoleID)[:])
		if roleErr != nil {
			return nil, roleErr
		}
		roleID = &id
	}
	return store.RestoreMembership(storeID, userID, roleID, dto.JoinedAt)
}

func joinRequestToDomain(dto JoinRequestDTO) (*store.JoinRequest, error) {
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	return store.NewJoinRequest(storeID, userID, dto.RequestedAt)
}
