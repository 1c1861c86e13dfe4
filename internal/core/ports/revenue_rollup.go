package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// RevenueRollup keeps day-bucketed running totals of completed orders per
// store, so reports do not rescan historical orders.
type RevenueRollup interface {
	// Increment adds amount to the bucket of day.
	Increment(ctx context.Context, storeID kernel.UUID, day kernel.Date, amount kernel.Money) error

	// MonthTotals returns the non-empty day buckets of month, keyed by day of
	// month. ok is false when the month was never built.
	MonthTotals(ctx context.Context, storeID kernel.UUID, month kernel.Date) (totals map[int]kernel.Money, ok bool, err error)

	// ReplaceMonth overwrites every bucket of month with totals.
	ReplaceMonth(ctx context.Context, storeID kernel.UUID, month kernel.Date, totals map[int]kernel.Money) error
}
