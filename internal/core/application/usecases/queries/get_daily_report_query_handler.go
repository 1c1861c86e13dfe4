package queries

import (
	"context"

	"fulfillment/internal/core/application/usecases/access"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/core/domain/services"
)

// GetDailyReportQueryHandler builds daily reports from stored orders. Only
// holders of Contabilidad or Administrador may read them.
//
// Example:
//
//	calc := services.NewRevenueCalculator(bogota)
//	handler := NewGetDailyReportQueryHandler(repos, calc)
//
//	day, _ := kernel.ParseDate("2024-03-14")
//	query, _ := NewGetDailyReportQuery(userID, storeID, day)
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders, %s total, %s monthly average\n",
//	    len(report.Entries), report.DailyTotal, report.MonthlyAverage)
type GetDailyReportQueryHandler struct {
	repos      Repositories
	calculator services.RevenueCalculator
	stages     access.StageLoader
}

func NewGetDailyReportQueryHandler(repos Repositories, calculator services.RevenueCalculator) GetDailyReportQueryHandler {
	return GetDailyReportQueryHandler{repos: repos, calculator: calculator, stages: access.NewStageLoader()}
}

func (h GetDailyReportQueryHandler) Handle(ctx context.Context, query GetDailyReportQuery) (DailyReport, error) {
	if err := query.Validate(); err != nil {
		return DailyReport{}, err
	}

	grant, err := h.stages.Require(ctx, h.repos.StoreRepository(), h.repos.MembershipRepository(),
		query.storeID, query.userID, store.Contabilidad, store.Administrador)
	if err != nil {
		return DailyReport{}, err
	}

	summary, err := summarizeMonth(ctx, h.repos.OrderRepository(), h.calculator, query.storeID, query.date)
	if err != nil {
		return DailyReport{}, err
	}

	storeName := displayName(grant.Store.Name())
	report := DailyReport{
		Date:           query.date,
		StoreName:      storeName,
		Entries:        make([]DailyReportEntry, 0, len(summary.Orders)),
		DailyTotal:     summary.DailyTotal,
		MonthlyAverage: summary.MonthlyAverage,
	}
	for _, o := range summary.Orders {
		report.Entries = append(report.Entries, h.entry(o, storeName))
	}
	return report, nil
}

func (h GetDailyReportQueryHandler) entry(o *order.Order, storeName string) DailyReportEntry {
	items := o.Items()
	entry := DailyReportEntry{
		OrderID:          o.ID(),
		ClientID:         o.ClientID(),
		StoreName:        storeName,
		PaymentMethod:    o.PaymentMethod(),
		PaymentReference: o.PaymentReference(),
		PurchasedAt:      o.PurchasedAt().In(h.calculator.Location()),
		Status:           o.Status(),
		Total:            o.Total(),
		Items:            make([]DailyReportItem, 0, len(items)),
	}
	for _, item := range items {
		entry.Items = append(entry.Items, DailyReportItem{
			ProductID: item.ProductID(),
			Name:      displayName(item.Name()),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Discount:  item.Discount(),
			LineTotal: item.LineTotal().Round(),
			Status:    item.Status(),
		})
	}
	return entry
}
