package storerepo

import (
	"context"
	"strings"

	"fulfillment/internal/adapters/out/postgres/dberr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/store"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStoreRepository implements StoreRepository using GORM.
type GormStoreRepository struct {
	db *gorm.DB
}

func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// Add provisions a store. A taken id or join code yields errs.ErrObjectExists.
func (r *GormStoreRepository) Add(ctx context.Context, s *store.Store) error {
	if err := s.Validate(); err != nil {
		return err
	}
	dto := storeFromDomain(s)
	return dberr.Translate(r.db.WithContext(ctx).Create(&dto).Error, "store", s.ID().String())
}

func (r *GormStoreRepository) Get(ctx context.Context, id kernel.UUID) (*store.Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StoreDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberr.NotFound(err, "store", id.String())
	}
	return storeToDomain(dto)
}

// GetByJoinCode matches codes case-insensitively; they are stored upper case.
func (r *GormStoreRepository) GetByJoinCode(ctx context.Context, joinCode string) (*store.Store, error) {
	code := strings.ToUpper(strings.TrimSpace(joinCode))

	var dto StoreDTO
	if err := r.db.WithContext(ctx).First(&dto, "join_code = ?", code).Error; err != nil {
		return nil, dberr.NotFound(err, "store", code)
	}
	return storeToDomain(dto)
}

func (r *GormStoreRepository) ListIDs(ctx context.Context) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&StoreDTO{}).Order("id").Pluck("id", &raw).Error; err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		storeID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, storeID)
	}
	return ids, nil
}

func (r *GormStoreRepository) AddRole(ctx context.Context, role *store.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	dto := roleFromDomain(role)
	return dberr.Translate(r.db.WithContext(ctx).Create(&dto).Error, "role", role.ID().String())
}

// GetRole only finds roles of the given store.
func (r *GormStoreRepository) GetRole(ctx context.Context, storeID, roleID kernel.UUID) (*store.Role, error) {
	var dto RoleDTO
	err := r.db.WithContext(ctx).First(&dto, "store_id = ? AND id = ?", storeID.Bytes(), roleID.Bytes()).Error
	if err != nil {
		return nil, dberr.NotFound(err, "role", roleID.String())
	}
	return roleToDomain(dto)
}

func (r *GormStoreRepository) ListRoles(ctx context.Context, storeID kernel.UUID) ([]*store.Role, error) {
	var dtos []RoleDTO
	if err := r.db.WithContext(ctx).Where("store_id = ?", storeID.Bytes()).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	roles := make([]*store.Role, 0, len(dtos))
	for _, dto := range dtos {
		role, err := roleToDomain(dto)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}
