package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reconcileJob     *ReconcileOrderStatusJob
	rollupRebuildJob *RevenueRollupRebuildJob
}

// NewJobManager takes the already built jobs; a nil rollupRebuildJob is
// skipped, as when no rollup is configured.
func NewJobManager(reconcileJob *ReconcileOrderStatusJob, rollupRebuildJob *RevenueRollupRebuildJob) *JobManager {
	return &JobManager{
		reconcileJob:     reconcileJob,
		rollupRebuildJob: rollupRebuildJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reconcileJob.Start(); err != nil {
		return fmt.Errorf("failed to start order status reconciliation job: %w", err)
	}

	if jm.rollupRebuildJob == nil {
		return nil
	}
	if err := jm.rollupRebuildJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.reconcileJob.Stop()
		return fmt.Errorf("failed to start revenue rollup rebuild job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs, waiting for running executions.
func (jm *JobManager) StopAll() {
	if jm.rollupRebuildJob != nil {
		jm.rollupRebuildJob.Stop()
	}
	jm.reconcileJob.Stop()
}
