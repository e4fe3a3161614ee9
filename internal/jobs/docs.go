// Package jobs provides scheduled background tasks for the loading service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AlertResetJob - Clears the temperature alert dedup flag on ALERT_RESET_CRON, for example at shift change
// 2. StaleLoadingJob - Logs orders in LOADING whose last telemetry is older than STALE_LOADING_AFTER
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(resetHandler, orderRepository, jobs.Schedules{
//		AlertReset:   "0 6,14,22 * * *",
//		StaleLoading: "@every 1m",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the standard five-field cron syntax plus descriptors such as "@every 1m".
// An empty alert reset schedule leaves that job disabled.
//
// # Error Handling
//
// - Both jobs log failures and keep running on the next tick
// - The stale loading monitor never writes; it only reports
// - Failed job starts will stop any already running jobs
package jobs
