package services

import (
	"slices"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// RevenueSummary is the accounting view of one day within its month.
type RevenueSummary struct {
	Date           kernel.Date
	Orders         []*order.Order
	DailyTotal     kernel.Money
	MonthlyAverage kernel.Money
	// DayTotals holds the total of every day of the month with at least one
	// eligible order, keyed by day of month.
	DayTotals map[int]kernel.Money
}

// RevenueCalculator aggregates stored order totals. Only Completado orders
// count; each order is bucketed by its purchase date in the given location.
type RevenueCalculator struct {
	loc *time.Location
}

func NewRevenueCalculator(loc *time.Location) RevenueCalculator {
	if loc == nil {
		loc = time.Local
	}
	return RevenueCalculator{loc: loc}
}

func (c RevenueCalculator) Location() *time.Location {
	return c.loc
}

// Summarize computes the day's orders and total plus the monthly average.
// Orders outside date's month or not Completado are ignored.
func (c RevenueCalculator) Summarize(date kernel.Date, orders []*order.Order) RevenueSummary {
	summary := RevenueSummary{
		Date:      date,
		Orders:    make([]*order.Order, 0),
		DayTotals: make(map[int]kernel.Money),
	}

	for _, o := range orders {
		if o.Status() != order.Completed {
			continue
		}
		purchased := kernel.DateOf(o.PurchasedAt(), c.loc)
		if !purchased.SameMonth(date) {
			continue
		}

		current, ok := summary.DayTotals[purchased.Day()]
		if !ok {
			current = kernel.ZeroMoney()
		}
		summary.DayTotals[purchased.Day()] = current.Add(o.Total())

		if purchased == date {
			summary.Orders = append(summary.Orders, o)
		}
	}

	slices.SortFunc(summary.Orders, func(a, b *order.Order) int {
		return a.PurchasedAt().Compare(b.PurchasedAt())
	})

	summary.DailyTotal = kernel.ZeroMoney()
	if total, ok := summary.DayTotals[date.Day()]; ok {
		summary.DailyTotal = total.Round()
	}
	summary.MonthlyAverage = AverageOfDays(summary.DayTotals)
	return summary
}

// AverageOfDays averages the given per-day totals; days absent from the map
// are excluded rather than counted as zero.
func AverageOfDays(dayTotals map[int]kernel.Money) kernel.Money {
	if len(dayTotals) == 0 {
		return kernel.ZeroMoney()
	}

	sum := decimal.Zero
	for _, total := range dayTotals {
		sum = sum.Add(total.Decimal())
	}

	avg, err := kernel.NewMoney(sum.Div(decimal.NewFromInt(int64(len(dayTotals)))))
	if err != nil {
		return kernel.ZeroMoney()
	}
	return avg.Round()
}
