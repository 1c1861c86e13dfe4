package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetDailyReportQueryIsNotConstructed = errors.New(
	"GetDailyReportQuery must be created via NewGetDailyReportQuery constructor",
)

// GetDailyReportQuery asks for the accounting view of one calendar day of a
// store, in the configured local time zone.
type GetDailyReportQuery struct {
	userID  kernel.UUID
	storeID kernel.UUID
	date    kernel.Date

	guard guard.ConstructorGuard
}

func NewGetDailyReportQuery(userID, storeID kernel.UUID, date kernel.Date) (GetDailyReportQuery, error) {
	if err := errors.Join(userID.Validate(), storeID.Validate(), date.Validate()); err != nil {
		return GetDailyReportQuery{}, err
	}
	return GetDailyReportQuery{userID: userID, storeID: storeID, date: date, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDailyReportQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyReportQueryIsNotConstructed)
}

// DailyReport lists the day's Completado orders and the store's revenue figures.
// DailyTotal sums stored order totals; MonthlyAverage averages the day totals
// of the days in the month that had at least one such order.
type DailyReport struct {
	Date           kernel.Date
	StoreName      string
	Entries        []DailyReportEntry
	DailyTotal     kernel.Money
	MonthlyAverage kernel.Money
}

type DailyReportEntry struct {
	OrderID          kernel.UUID
	ClientID         kernel.UUID
	StoreName        string
	PaymentMethod    string
	PaymentReference string
	// PurchasedAt is expressed in the report's time zone.
	PurchasedAt time.Time
	Status      order.Status
	Total       kernel.Money
	Items       []DailyReportItem
}

type DailyReportItem struct {
	ProductID kernel.UUID
	Name      string
	Quantity  int
	UnitPrice kernel.Money
	Discount  kernel.Percent
	LineTotal kernel.Money
	Status    order.ItemStatus
}
