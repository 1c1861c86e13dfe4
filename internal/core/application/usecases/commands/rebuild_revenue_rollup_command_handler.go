package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// RebuildRevenueRollupCommandHandler overwrites the rollup buckets of one
// store-month with totals computed from Completado orders, repairing
// increments that were lost after their order committed.
type RebuildRevenueRollupCommandHandler struct {
	uowFactory OrderUoWFactory
	rollup     ports.RevenueRollup
	calculator services.RevenueCalculator
}

func NewRebuildRevenueRollupCommandHandler(
	uowFactory OrderUoWFactory,
	rollup ports.RevenueRollup,
	calculator services.RevenueCalculator,
) RebuildRevenueRollupCommandHandler {
	return RebuildRevenueRollupCommandHandler{
		uowFactory: uowFactory,
		rollup:     rollup,
		calculator: calculator,
	}
}

func (h *RebuildRevenueRollupCommandHandler) Handle(ctx context.Context, cmd RebuildRevenueRollupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	loc := h.calculator.Location()
	month := cmd.Month()
	orders, err := h.uowFactory.Create().OrderRepository().ListCompletedByStore(
		ctx, cmd.StoreID(), month.Start(loc), month.NextMonthStart().Start(loc),
	)
	if err != nil {
		return err
	}

	summary := h.calculator.Summarize(month, orders)
	return h.rollup.ReplaceMonth(ctx, cmd.StoreID(), month, summary.DayTotals)
}
