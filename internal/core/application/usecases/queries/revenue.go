package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// summarizeMonth loads the Completado orders of date's month and summarizes them.
func summarizeMonth(
	ctx context.Context,
	orders ports.OrderRepository,
	calculator services.RevenueCalculator,
	storeID kernel.UUID,
	date kernel.Date,
) (services.RevenueSummary, error) {
	loc := calculator.Location()
	from := date.MonthStart().Start(loc)
	to := date.NextMonthStart().Start(loc)

	completed, err := orders.ListCompletedByStore(ctx, storeID, from, to)
	if err != nil {
		return services.RevenueSummary{}, err
	}
	return calculator.Summarize(date, completed), nil
}
