// Package queries contains read-only use cases. Queries never go through a
// cache: every call reads the current committed state, so two workers looking
// at the same stage see the same items.
package queries

import (
	"fulfillment/internal/core/ports"
)

// Repositories gives queries access to the repositories outside of any
// transaction. A postgres unit of work that was never begun satisfies it.
type Repositories interface {
	OrderRepository() ports.OrderRepository
	StoreRepository() ports.StoreRepository
	MembershipRepository() ports.MembershipRepository
}
