package cartrepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/dberr"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) Get(ctx context.Context, clientID, storeID, productID kernel.UUID) (*cart.Entry, error) {
	if err := errors.Join(clientID.Validate(), storeID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	var dto CartEntryDTO
	err := r.db.WithContext(ctx).
		First(&dto, "client_id = ? AND store_id = ? AND product_id = ?",
			clientID.Bytes(), storeID.Bytes(), productID.Bytes()).Error
	if err != nil {
		return nil, dberr.NotFound(err, "cartEntry", productID.String())
	}
	return toDomain(dto)
}

func (r *GormCartRepository) ListByClient(ctx context.Context, clientID kernel.UUID) ([]*cart.Entry, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}
	return r.find(r.db.WithContext(ctx).Where("client_id = ?", clientID.Bytes()))
}

func (r *GormCartRepository) ListByClientAndStore(
	ctx context.Context,
	clientID, storeID kernel.UUID,
) ([]*cart.Entry, error) {
	if err := errors.Join(clientID.Validate(), storeID.Validate()); err != nil {
		return nil, err
	}
	return r.find(r.db.WithContext(ctx).Where("client_id = ? AND store_id = ?", clientID.Bytes(), storeID.Bytes()))
}

// Save inserts the entry or, when the key exists, adds its quantity to the
// stored one in the same statement; labels, price and discount are replaced.
func (r *GormCartRepository) Save(ctx context.Context, entry *cart.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	updates := clause.AssignmentColumns([]string{
		"name", "description", "photo_ref", "unit_price", "discount", "updated_at",
	})
	updates = append(updates, clause.Assignment{
		Column: clause.Column{Name: "quantity"},
		Value:  gorm.Expr("cart_entries.quantity + excluded.quantity"),
	})

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}, {Name: "store_id"}, {Name: "product_id"}},
			DoUpdates: updates,
		}).
		Create(&dto).Error
}

func (r *GormCartRepository) Remove(ctx context.Context, clientID, storeID, productID kernel.UUID) error {
	if err := errors.Join(clientID.Validate(), storeID.Validate(), productID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("client_id = ? AND store_id = ? AND product_id = ?", clientID.Bytes(), storeID.Bytes(), productID.Bytes()).
		Delete(&CartEntryDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cartEntry", productID.String())
	}
	return nil
}

// RemoveEntries deletes each entry only while its stored quantity is still
// the one read, and fails with errs.ErrVersionIsInvalid as soon as one is gone
// or was merged meanwhile, leaving the rollback to the caller.
func (r *GormCartRepository) RemoveEntries(ctx context.Context, clientID kernel.UUID, entries []*cart.Entry) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	for _, entry := range entries {
		result := db.
			Where("client_id = ? AND store_id = ? AND product_id = ? AND quantity = ?",
				clientID.Bytes(), entry.StoreID().Bytes(), entry.ProductID().Bytes(), entry.Quantity()).
			Delete(&CartEntryDTO{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewVersionIsInvalidErrorWithCause("cartEntries")
		}
	}
	return nil
}

func (r *GormCartRepository) find(query *gorm.DB) ([]*cart.Entry, error) {
	var dtos []CartEntryDTO
	if err := query.Order("store_id").Order("product_id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*cart.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
