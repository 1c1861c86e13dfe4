package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/logger"
	"fulfillment/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReconciler struct{ mock.Mock }

func (m *MockReconciler) Handle(ctx context.Context, cmd commands.ReconcileOrderStatusCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockStoreLister struct{ mock.Mock }

func (m *MockStoreLister) ListIDs(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type MockRebuilder struct{ mock.Mock }

func (m *MockRebuilder) Handle(ctx context.Context, cmd commands.RebuildRevenueRollupCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

func month(t *testing.T, y int, m time.Month) kernel.Date {
	t.Helper()
	d, err := kernel.NewDate(y, m, 1)
	require.NoError(t, err)
	return d
}

func rebuildFor(storeID kernel.UUID, m kernel.Date) any {
	return mock.MatchedBy(func(cmd commands.RebuildRevenueRollupCommand) bool {
		return cmd.StoreID().IsEqual(storeID) && cmd.Month() == m
	})
}

func TestReconcileOrderStatusJob_Run(t *testing.T) {
	ctx := t.Context()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	handler := &MockReconciler{}

	handler.On("Handle", ctx, mock.MatchedBy(func(cmd commands.ReconcileOrderStatusCommand) bool {
		return cmd.BatchSize() == 50
	})).Return(2, nil).Once()
	handler.On("Handle", ctx, mock.Anything).Return(0, errors.New("database is closed")).Once()

	job := NewReconcileOrderStatusJob(handler, "0 */5 * * * *", 50, logger.Nop(), m)
	job.run(ctx)
	job.run(ctx)

	handler.AssertExpectations(t)
	count, err := testutil.GatherAndCount(reg, "fulfillment_job_executions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRevenueRollupRebuildJob_RebuildsCurrentAndPreviousMonth(t *testing.T) {
	ctx := t.Context()
	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	storeA, storeB := kernel.NewUUID(), kernel.NewUUID()
	stores := &MockStoreLister{}
	handler := &MockRebuilder{}
	stores.On("ListIDs", ctx).Return([]kernel.UUID{storeA, storeB}, nil).Once()

	december, january := month(t, 2024, time.December), month(t, 2025, time.January)
	failure := errors.New("redis: connection refused")
	handler.On("Handle", ctx, rebuildFor(storeA, december)).Return(nil).Once()
	handler.On("Handle", ctx, rebuildFor(storeA, january)).Return(failure).Once()
	handler.On("Handle", ctx, rebuildFor(storeB, december)).Return(nil).Once()
	handler.On("Handle", ctx, rebuildFor(storeB, january)).Return(nil).Once()

	job := NewRevenueRollupRebuildJob(stores, handler, "0 30 3 * * *", bogota, logger.Nop(), nil)
	// 2025-02-01 03:00 UTC is still January 31 in Bogotá.
	job.now = func() time.Time { return time.Date(2025, time.February, 1, 3, 0, 0, 0, time.UTC) }
	require.ErrorIs(t, job.rebuild(ctx), failure)
	stores.AssertExpectations(t)
	handler.AssertExpectations(t)

	stores.On("ListIDs", ctx).Return(nil, errors.New("no connection")).Once()
	job.now = func() time.Time { return time.Date(2025, time.February, 1, 12, 0, 0, 0, time.UTC) }
	require.ErrorContains(t, job.rebuild(ctx), "listing stores")
}

func TestRevenueRollupRebuildJob_MonthBoundary(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	stores := &MockStoreLister{}
	handler := &MockRebuilder{}
	stores.On("ListIDs", ctx).Return([]kernel.UUID{storeID}, nil).Once()
	handler.On("Handle", ctx, rebuildFor(storeID, month(t, 2024, time.December))).Return(nil).Once()
	handler.On("Handle", ctx, rebuildFor(storeID, month(t, 2025, time.January))).Return(nil).Once()

	job := NewRevenueRollupRebuildJob(stores, handler, "0 30 3 * * *", time.UTC, logger.Nop(), nil)
	job.now = func() time.Time { return time.Date(2025, time.January, 15, 3, 30, 0, 0, time.UTC) }

	require.NoError(t, job.rebuild(ctx))
	handler.AssertExpectations(t)
}

func TestJobManager_StartStop(t *testing.T) {
	reconcile := NewReconcileOrderStatusJob(&MockReconciler{}, "0 0 * * * *", 10, logger.Nop(), nil)
	rebuild := NewRevenueRollupRebuildJob(&MockStoreLister{}, &MockRebuilder{}, "0 30 3 * * *", time.UTC, logger.Nop(), nil)

	manager := NewJobManager(reconcile, rebuild)
	require.NoError(t, manager.StartAll())
	manager.StopAll()

	require.NoError(t, NewJobManager(reconcile, nil).StartAll())
	reconcile.Stop()
}

func TestJobManager_InvalidSchedule(t *testing.T) {
	reconcile := NewReconcileOrderStatusJob(&MockReconciler{}, "0 0 * * * *", 10, logger.Nop(), nil)
	rebuild := NewRevenueRollupRebuildJob(&MockStoreLister{}, &MockRebuilder{}, "every night", time.UTC, logger.Nop(), nil)

	err := NewJobManager(reconcile, rebuild).StartAll()
	require.ErrorContains(t, err, "revenue rollup rebuild")
}
