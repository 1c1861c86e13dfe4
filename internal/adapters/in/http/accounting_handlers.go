package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetDailyReport handles GET /api/v1/stores/:storeId/reports/daily?date=YYYY-MM-DD.
func (s *Server) GetDailyReport(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return s.fail(c, err)
	}
	storeID, err := pathUUID(c, "storeId")
	if err != nil {
		return s.fail(c, err)
	}
	date, err := s.dateParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetDailyReportQuery(userID, storeID, date)
	if err != nil {
		return s.fail(c, err)
	}
	report, err := s.h.DailyReport.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	orders := make([]Order, 0, len(report.Entries))
	for _, entry := range report.Entries {
		orders = append(orders, reportOrderFrom(entry))
	}
	return c.JSON(http.StatusOK, DailyReport{
		Date:           report.Date.String(),
		StoreName:      report.StoreName,
		Orders:         orders,
		DailyTotal:     report.DailyTotal.String(),
		MonthlyAverage: report.MonthlyAverage.String(),
	})
}

// GetDailyRevenue handles GET /api/v1/stores/:storeId/revenue/daily?date=YYYY-MM-DD.
func (s *Server) GetDailyRevenue(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return s.fail(c, err)
	}
	storeID, err := pathUUID(c, "storeId")
	if err != nil {
		return s.fail(c, err)
	}
	date, err := s.dateParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetDailyRevenueQuery(userID, storeID, date)
	if err != nil {
		return s.fail(c, err)
	}
	revenue, err := s.h.DailyRevenue.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, DailyRevenue{
		Date:           revenue.Date.String(),
		DailyTotal:     revenue.DailyTotal.String(),
		MonthlyAverage: revenue.MonthlyAverage.String(),
		FromRollup:     revenue.FromRollup,
	})
}
