package queries_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bogota(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)
	return loc
}

// marchOrders returns orders of st purchased on March 14 (30.00 and 45.75,
// the latter at 22:00 local which is already March 15 in UTC) and March 10
// (20.00), Bogotá time.
func marchOrders(t *testing.T, st *store.Store) []*order.Order {
	t.Helper()
	return []*order.Order{
		completedOrder(t, st.ID(), time.Date(2024, time.March, 15, 3, 0, 0, 0, time.UTC), "45.75", ""),
		completedOrder(t, st.ID(), time.Date(2024, time.March, 14, 15, 0, 0, 0, time.UTC), "30.00", "Almojábana"),
		completedOrder(t, st.ID(), time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC), "20.00", "Pandebono"),
	}
}

func TestGetDailyReportQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	loc := bogota(t)
	st := newTestStore(t, "Panadería La Espiga")
	userID := kernel.NewUUID()

	repos := newMockRepositories()
	repos.member(t, st, userID, store.Contabilidad)
	repos.orders.On("ListCompletedByStore", ctx, st.ID(),
		time.Date(2024, time.March, 1, 0, 0, 0, 0, loc),
		time.Date(2024, time.April, 1, 0, 0, 0, 0, loc),
	).Return(marchOrders(t, st), nil).Once()

	day, err := kernel.ParseDate("2024-03-14")
	require.NoError(t, err)
	query, err := queries.NewGetDailyReportQuery(userID, st.ID(), day)
	require.NoError(t, err)

	h := queries.NewGetDailyReportQueryHandler(repos, services.NewRevenueCalculator(loc))
	report, err := h.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, "75.75", report.DailyTotal.String())
	assert.Equal(t, "47.88", report.MonthlyAverage.String())
	require.Len(t, report.Entries, 2)

	first, second := report.Entries[0], report.Entries[1]
	assert.Equal(t, "30.00", first.Total.String())
	assert.Equal(t, "Almojábana", first.Items[0].Name)
	assert.Equal(t, 10, first.PurchasedAt.Hour())
	assert.Equal(t, "Panadería La Espiga", first.StoreName)
	assert.Equal(t, queries.UnknownLabel, second.Items[0].Name)
	assert.Equal(t, 22, second.PurchasedAt.Hour())
	repos.orders.AssertExpectations(t)
}

func TestGetDailyReportQueryHandler_Handle_EmptyDay(t *testing.T) {
	ctx := t.Context()
	loc := bogota(t)
	st := newTestStore(t, "Tienda")

	repos := newMockRepositories()
	repos.stores.On("Get", ctx, st.ID()).Return(st, nil)
	repos.orders.On("ListCompletedByStore", ctx, st.ID(), mock.Anything, mock.Anything).
		Return(marchOrders(t, st), nil).Once()

	day, _ := kernel.ParseDate("2024-03-20")
	query, _ := queries.NewGetDailyReportQuery(st.OwnerID(), st.ID(), day)
	report, err := queries.NewGetDailyReportQueryHandler(repos, services.NewRevenueCalculator(loc)).Handle(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, report.Entries)
	assert.Equal(t, "0.00", report.DailyTotal.String())
	assert.Equal(t, "47.88", report.MonthlyAverage.String())
}

func TestGetDailyReportQueryHandler_Handle_RequiresAccounting(t *testing.T) {
	ctx := t.Context()
	st := newTestStore(t, "Tienda")
	userID := kernel.NewUUID()

	repos := newMockRepositories()
	repos.member(t, st, userID, store.Cocinero, store.Despachador)

	day, _ := kernel.ParseDate("2024-03-14")
	query, _ := queries.NewGetDailyReportQuery(userID, st.ID(), day)
	_, err := queries.NewGetDailyReportQueryHandler(repos, services.NewRevenueCalculator(time.UTC)).Handle(ctx, query)
	require.ErrorIs(t, err, store.ErrUnauthorized)
	repos.orders.AssertNotCalled(t, "ListCompletedByStore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetDailyReportQueryHandler_Handle_PendingMember(t *testing.T) {
	ctx := t.Context()
	st := newTestStore(t, "Tienda")
	userID := kernel.NewUUID()

	repos := newMockRepositories()
	repos.member(t, st, userID)

	day, _ := kernel.ParseDate("2024-03-14")
	query, _ := queries.NewGetDailyReportQuery(userID, st.ID(), day)
	_, err := queries.NewGetDailyReportQueryHandler(repos, services.NewRevenueCalculator(time.UTC)).Handle(ctx, query)
	require.ErrorIs(t, err, store.ErrPendingRoleAssignment)
}
