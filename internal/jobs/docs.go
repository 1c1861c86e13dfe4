// Package jobs provides scheduled background tasks for the fulfillment pipeline.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and only drive command handlers; they hold no business rules.
//
// # Available Jobs
//
// 1. ReconcileOrderStatusJob - recomputes the aggregate status of orders that
// are not Completado and repairs drifted headers
// 2. RevenueRollupRebuildJob - rewrites the revenue rollup of the current and
// previous month of every store from the Completado orders
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reconcileJob, rollupRebuildJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failures are logged and counted in fulfillment_job_executions_total; the
// next run retries. The rebuild job continues past a failing store.
package jobs
