package orderrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/adapters/out/postgres/dberr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// driftedStatus matches headers whose status differs from the projection of
// their items: Completado when no item is short of DELIVERED, En espera when
// one moved past RECEIVED, Pagado otherwise.
const driftedStatus = `status <> CASE
	WHEN NOT EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = orders.id AND oi.status <> ?) THEN ?
	WHEN EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = orders.id AND oi.status > ?) THEN ?
	ELSE ? END`

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{
		db: db,
	}
}

// Add saves a new order together with its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate(err, "order", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an order and its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberr.NotFound(err, "order", id.String())
	}

	return toDomain(dto)
}

// GetForUpdate loads an order like Get after locking its header row until the
// surrounding transaction ends. Writers of the same order queue behind it, so
// the items it returns are the committed state. sqlite ignores the lock and
// serializes writers instead.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var locked OrderDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Select("id").
		First(&locked, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberr.NotFound(err, "order", id.String())
	}

	return r.Get(ctx, id)
}

// UpdateStatus writes the header status only; items move through UpdateItemStatus.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}

// UpdateItemStatus moves one item from `from` to `to` in a single conditional
// UPDATE. When no row matches, a second read tells a missing item apart from
// one another writer already moved.
func (r *GormOrderRepository) UpdateItemStatus(
	ctx context.Context,
	orderID, productID kernel.UUID,
	from, to order.ItemStatus,
) error {
	if err := errors.Join(orderID.Validate(), productID.Validate(), from.Validate(), to.Validate()); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	result := db.Model(&OrderItemDTO{}).
		Where("order_id = ? AND product_id = ? AND status = ?", orderID.Bytes(), productID.Bytes(), int(from)).
		Update("status", int(to))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(&OrderItemDTO{}).
		Where("order_id = ? AND product_id = ?", orderID.Bytes(), productID.Bytes()).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("orderItem", productID.String())
	}
	return errs.NewVersionIsInvalidErrorWithCause("orderItem")
}

// ListDrifted returns the ids of up to limit orders, oldest first, that are
// not Completado and whose stored status differs from their items.
func (r *GormOrderRepository) ListDrifted(ctx context.Context, limit int) ([]kernel.UUID, error) {
	var rows []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status <> ?", int(order.Completed)).
		Where(driftedStatus,
			int(order.ItemDelivered), int(order.Completed),
			int(order.ItemReceived), int(order.Waiting),
			int(order.Paid)).
		Order("purchased_at").
		Order("id").
		Limit(limit).
		Pluck("id", &rows).Error; err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ListCompletedByStore returns the Completado orders of a store purchased in [from, to).
func (r *GormOrderRepository) ListCompletedByStore(
	ctx context.Context,
	storeID kernel.UUID,
	from, to time.Time,
) ([]*order.Order, error) {
	if err := storeID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.withItems(ctx).
		Where("store_id = ? AND status = ?", storeID.Bytes(), int(order.Completed)).
		Where("purchased_at >= ? AND purchased_at < ?", from.UTC(), to.UTC()).
		Order("purchased_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("product_id")
	})
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
