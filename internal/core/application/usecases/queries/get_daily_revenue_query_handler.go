package queries

import (
	"context"

	"fulfillment/internal/core/application/usecases/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// GetDailyRevenueQueryHandler answers from the revenue rollup and falls back
// to scanning the month's orders when the rollup has no data for the month
// or cannot be reached.
type GetDailyRevenueQueryHandler struct {
	repos      Repositories
	rollup     ports.RevenueRollup
	calculator services.RevenueCalculator
	stages     access.StageLoader
}

func NewGetDailyRevenueQueryHandler(
	repos Repositories,
	rollup ports.RevenueRollup,
	calculator services.RevenueCalculator,
) GetDailyRevenueQueryHandler {
	return GetDailyRevenueQueryHandler{
		repos:      repos,
		rollup:     rollup,
		calculator: calculator,
		stages:     access.NewStageLoader(),
	}
}

func (h GetDailyRevenueQueryHandler) Handle(ctx context.Context, query GetDailyRevenueQuery) (DailyRevenue, error) {
	if err := query.Validate(); err != nil {
		return DailyRevenue{}, err
	}

	_, err := h.stages.Require(ctx, h.repos.StoreRepository(), h.repos.MembershipRepository(),
		query.storeID, query.userID, store.Contabilidad, store.Administrador)
	if err != nil {
		return DailyRevenue{}, err
	}

	if h.rollup != nil {
		totals, ok, rollupErr := h.rollup.MonthTotals(ctx, query.storeID, query.date.MonthStart())
		if rollupErr == nil && ok {
			revenue := DailyRevenue{
				Date:           query.date,
				DailyTotal:     kernel.ZeroMoney(),
				MonthlyAverage: services.AverageOfDays(totals),
				FromRollup:     true,
			}
			if total, found := totals[query.date.Day()]; found {
				revenue.DailyTotal = total.Round()
			}
			return revenue, nil
		}
	}

	summary, err := summarizeMonth(ctx, h.repos.OrderRepository(), h.calculator, query.storeID, query.date)
	if err != nil {
		return DailyRevenue{}, err
	}
	return DailyRevenue{
		Date:           query.date,
		DailyTotal:     summary.DailyTotal,
		MonthlyAverage: summary.MonthlyAverage,
	}, nil
}
