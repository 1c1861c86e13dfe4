// Package ports defines the contracts between the fulfillment core and its
// infrastructure: repositories, the unit of work, the revenue rollup and the
// order event publisher.
package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with their items.
type OrderRepository interface {
	// Add writes the header and every item of a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its items. Missing orders yield errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate loads an order like Get and locks its header until the
	// transaction ends, so concurrent writers of the same order run one after
	// the other and each sees the items the previous one committed.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus writes the aggregate status of the header.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// UpdateItemStatus is the per-item compare-and-set: the write happens only
	// if the stored status still equals from. A lost race yields
	// errs.ErrVersionIsInvalid; a missing item errs.ErrObjectNotFound.
	UpdateItemStatus(ctx context.Context, orderID, productID kernel.UUID, from, to order.ItemStatus) error

	// ListDrifted returns the ids of up to limit orders, oldest first, that are
	// not Completado and whose stored status differs from the one projected
	// from their items. Orders whose items simply have not moved never appear.
	ListDrifted(ctx context.Context, limit int) ([]kernel.UUID, error)

	// ListCompletedByStore returns the Completado orders of a store purchased
	// in [from, to).
	ListCompletedByStore(ctx context.Context, storeID kernel.UUID, from, to time.Time) ([]*order.Order, error)
}
