package storerepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/dberr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMembershipRepository implements MembershipRepository using GORM.
type GormMembershipRepository struct {
	db *gorm.DB
}

func NewGormMembershipRepository(db *gorm.DB) *GormMembershipRepository {
	return &GormMembershipRepository{db: db}
}

func (r *GormMembershipRepository) Get(ctx context.Context, storeID, userID kernel.UUID) (*store.Membership, error) {
	if err := errors.Join(storeID.Validate(), userID.Validate()); err != nil {
		return nil, err
	}

	var dto MembershipDTO
	err := r.db.WithContext(ctx).First(&dto, "store_id = ? AND user_id = ?", storeID.Bytes(), userID.Bytes()).Error
	if err != nil {
		return nil, dberr.NotFound(err, "membership", userID.String())
	}
	return membershipToDomain(dto)
}

func (r *GormMembershipRepository) Add(ctx context.Context, m *store.Membership) error {
	if err := m.Validate(); err != nil {
		return err
	}
	dto := membershipFromDomain(m)
	return dberr.Translate(r.db.WithContext(ctx).Create(&dto).Error, "membership", m.UserID().String())
}

// Update writes the role assignment, the only mutable part of a membership.
func (r *GormMembershipRepository) Update(ctx context.Context, m *store.Membership) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := membershipFromDomain(m)
	result := r.db.WithContext(ctx).
		Model(&MembershipDTO{}).
		Where("store_id = ? AND user_id = ?", dto.StoreID, dto.UserID).
		Update("role_id", dto.RoleID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("membership", m.UserID().String())
	}
	return nil
}

func (r *GormMembershipRepository) Remove(ctx context.Context, storeID, userID kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Where("store_id = ? AND user_id = ?", storeID.Bytes(), userID.Bytes()).
		Delete(&MembershipDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("membership", userID.String())
	}
	return nil
}

func (r *GormMembershipRepository) AddJoinRequest(ctx context.Context, req *store.JoinRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	dto := JoinRequestDTO{
		StoreID:     req.StoreID().Bytes(),
		UserID:      req.UserID().Bytes(),
		RequestedAt: req.RequestedAt().UTC(),
	}
	return dberr.Translate(r.db.WithContext(ctx).Create(&dto).Error, "joinRequest", req.UserID().String())
}

func (r *GormMembershipRepository) GetJoinRequest(
	ctx context.Context,
	storeID, userID kernel.UUID,
) (*store.JoinRequest, error) {
	var dto JoinRequestDTO
	err := r.db.WithContext(ctx).First(&dto, "store_id = ? AND user_id = ?", storeID.Bytes(), userID.Bytes()).Error
	if err != nil {
		return nil, dberr.NotFound(err, "joinRequest", userID.String())
	}
	return joinRequestToDomain(dto)
}

func (r *GormMembershipRepository) RemoveJoinRequest(ctx context.Context, storeID, userID kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Where("store_id = ? AND user_id = ?", storeID.Bytes(), userID.Bytes()).
		Delete(&JoinRequestDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("joinRequest", userID.String())
	}
	return nil
}
