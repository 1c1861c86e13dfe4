package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetDailyRevenueQueryIsNotConstructed = errors.New(
	"GetDailyRevenueQuery must be created via NewGetDailyRevenueQuery constructor",
)

// GetDailyRevenueQuery asks only for the revenue figures of a day, without
// the order list.
type GetDailyRevenueQuery struct {
	userID  kernel.UUID
	storeID kernel.UUID
	date    kernel.Date

	guard guard.ConstructorGuard
}

func NewGetDailyRevenueQuery(userID, storeID kernel.UUID, date kernel.Date) (GetDailyRevenueQuery, error) {
	if err := errors.Join(userID.Validate(), storeID.Validate(), date.Validate()); err != nil {
		return GetDailyRevenueQuery{}, err
	}
	return GetDailyRevenueQuery{userID: userID, storeID: storeID, date: date, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDailyRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyRevenueQueryIsNotConstructed)
}

type DailyRevenue struct {
	Date           kernel.Date
	DailyTotal     kernel.Money
	MonthlyAverage kernel.Money
	// FromRollup is false when the figures were computed from the orders
	// because the month's buckets were not available.
	FromRollup bool
}
