package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRebuildRevenueRollupCommandIsNotConstructed = errors.New(
	"RebuildRevenueRollupCommand must be created via NewRebuildRevenueRollupCommand constructor",
)

// RebuildRevenueRollupCommand re-derives a store's day buckets for the month
// containing month from the stored orders.
type RebuildRevenueRollupCommand struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID
	month   kernel.Date

	guard guard.ConstructorGuard
}

func NewRebuildRevenueRollupCommand(storeID kernel.UUID, month kernel.Date) (RebuildRevenueRollupCommand, error) {
	if err := errors.Join(storeID.Validate(), month.Validate()); err != nil {
		return RebuildRevenueRollupCommand{}, err
	}
	return RebuildRevenueRollupCommand{
		storeID: storeID,
		month:   month.MonthStart(),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RebuildRevenueRollupCommand) Validate() error {
	return c.guard.Validate(ErrRebuildRevenueRollupCommandIsNotConstructed)
}

func (c RebuildRevenueRollupCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Month is the first day of the month to rebuild.
func (c RebuildRevenueRollupCommand) Month() kernel.Date {
	return c.month
}
