package jobs

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/logger"
	"fulfillment/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/multierr"
)

const rollupRebuildJobName = "revenue_rollup_rebuild"

type storeLister interface {
	ListIDs(ctx context.Context) ([]kernel.UUID, error)
}

type rollupRebuilder interface {
	Handle(ctx context.Context, cmd commands.RebuildRevenueRollupCommand) error
}

// RevenueRollupRebuildJob recomputes the rollup buckets of the current and
// the previous month for every store. The previous month is included so
// orders completed after midnight on the first day still land in it.
type RevenueRollupRebuildJob struct {
	stores   storeLister
	handler  rollupRebuilder
	schedule string
	loc      *time.Location
	now      func() time.Time
	cron     *cron.Cron
	log      *logger.Logger
	metrics  *metrics.Metrics
}

func NewRevenueRollupRebuildJob(
	stores storeLister,
	handler rollupRebuilder,
	schedule string,
	loc *time.Location,
	log *logger.Logger,
	m *metrics.Metrics,
) *RevenueRollupRebuildJob {
	return &RevenueRollupRebuildJob{
		stores:   stores,
		handler:  handler,
		schedule: schedule,
		loc:      loc,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		log:      log.Component("revenue_rollup_rebuild_job"),
		metrics:  m,
	}
}

func (j *RevenueRollupRebuildJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info(context.Background(), "revenue rollup rebuild started ("+j.schedule+")")
	return nil
}

// Stop waits for a running rebuild to finish.
func (j *RevenueRollupRebuildJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info(context.Background(), "revenue rollup rebuild stopped")
}

func (j *RevenueRollupRebuildJob) run(ctx context.Context) {
	started := time.Now()
	err := j.rebuild(ctx)

	j.metrics.JobFinished(rollupRebuildJobName, time.Since(started), err == nil)
	if err != nil {
		j.log.Error(ctx, "revenue rollup rebuild failed", err)
	}
}

// rebuild keeps going after a failing store and reports every failure.
func (j *RevenueRollupRebuildJob) rebuild(ctx context.Context) error {
	storeIDs, err := j.stores.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("listing stores: %w", err)
	}

	current := kernel.DateOf(j.now(), j.loc).MonthStart()
	previous := kernel.DateOf(current.Start(j.loc).AddDate(0, 0, -1), j.loc).MonthStart()

	var failures error
	for _, storeID := range storeIDs {
		for _, month := range []kernel.Date{previous, current} {
			cmd, cmdErr := commands.NewRebuildRevenueRollupCommand(storeID, month)
			if cmdErr == nil {
				cmdErr = j.handler.Handle(ctx, cmd)
			}
			if cmdErr != nil {
				failures = multierr.Append(failures, fmt.Errorf("store %s month %s: %w", storeID, month, cmdErr))
			}
		}
	}
	return failures
}
