package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
)

// CartRepository persists the per-client cart, keyed by (client, store, product).
type CartRepository interface {
	// Get yields errs.ErrObjectNotFound when the client has no such entry.
	Get(ctx context.Context, clientID, storeID, productID kernel.UUID) (*cart.Entry, error)

	ListByClient(ctx context.Context, clientID kernel.UUID) ([]*cart.Entry, error)

	ListByClientAndStore(ctx context.Context, clientID, storeID kernel.UUID) ([]*cart.Entry, error)

	// Save inserts the entry or atomically adds its quantity to the stored one
	// with the same key; the other details take the new values.
	Save(ctx context.Context, entry *cart.Entry) error

	// Remove deletes one entry; a missing entry yields errs.ErrObjectNotFound.
	Remove(ctx context.Context, clientID, storeID, productID kernel.UUID) error

	// RemoveEntries deletes exactly the given entries as they were read. If any
	// of them is already gone or its quantity changed the call fails with
	// errs.ErrVersionIsInvalid so the caller can roll the transaction back.
	RemoveEntries(ctx context.Context, clientID kernel.UUID, entries []*cart.Entry) error
}
