// Package commands contains business operations that modify system state.
// Every handler follows the same pattern: validate the command, open a unit of
// work, mutate aggregates through repositories, commit, and only then run the
// best-effort side effects (events, revenue rollup, metrics).
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces narrow ports.UnitOfWork to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	StoreRepoFactory interface {
		StoreRepository() ports.StoreRepository
	}

	MembershipRepoFactory interface {
		MembershipRepository() ports.MembershipRepository
	}

	// CartUoW manages transactions for cart-only operations.
	CartUoW interface {
		TxManager
		CartRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW spans one store's order creation: the order rows are written
	// and the store's cart entries deleted in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   cartRepo := uow.CartRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... add the order, remove the entries
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions that only touch orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// WorkflowUoW covers an item transition: the caller's stages are resolved
	// from store and membership data read in the same transaction as the order.
	WorkflowUoW interface {
		TxManager
		OrderRepoFactory
		StoreRepoFactory
		MembershipRepoFactory
	}

	WorkflowUoWFactory interface {
		Create() WorkflowUoW
	}

	// MembershipUoW manages worker and role administration.
	MembershipUoW interface {
		TxManager
		StoreRepoFactory
		MembershipRepoFactory
	}

	MembershipUoWFactory interface {
		Create() MembershipUoW
	}
)
