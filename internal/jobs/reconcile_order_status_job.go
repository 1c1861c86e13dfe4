package jobs

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/pkg/logger"
	"fulfillment/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const reconcileJobName = "reconcile_order_status"

type orderStatusReconciler interface {
	Handle(ctx context.Context, cmd commands.ReconcileOrderStatusCommand) (int, error)
}

// ReconcileOrderStatusJob recomputes the aggregate status of open orders and
// repairs headers that drifted from their items.
type ReconcileOrderStatusJob struct {
	handler   orderStatusReconciler
	schedule  string
	batchSize int
	cron      *cron.Cron
	log       *logger.Logger
	metrics   *metrics.Metrics
}

func NewReconcileOrderStatusJob(
	handler orderStatusReconciler,
	schedule string,
	batchSize int,
	log *logger.Logger,
	m *metrics.Metrics,
) *ReconcileOrderStatusJob {
	return &ReconcileOrderStatusJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		log:       log.Component("reconcile_order_status_job"),
		metrics:   m,
	}
}

func (j *ReconcileOrderStatusJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info(context.Background(), "order status reconciliation started ("+j.schedule+")")
	return nil
}

// Stop waits for a running reconciliation to finish.
func (j *ReconcileOrderStatusJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info(context.Background(), "order status reconciliation stopped")
}

func (j *ReconcileOrderStatusJob) run(ctx context.Context) {
	started := time.Now()

	cmd, err := commands.NewReconcileOrderStatusCommand(j.batchSize)
	if err == nil {
		var repaired int
		repaired, err = j.handler.Handle(ctx, cmd)
		if repaired > 0 {
			j.log.Info(j.log.WithField(ctx, "repaired", repaired), "order headers repaired")
		}
	}

	j.metrics.JobFinished(reconcileJobName, time.Since(started), err == nil)
	if err != nil {
		j.log.Error(ctx, "order status reconciliation failed", err)
	}
}
