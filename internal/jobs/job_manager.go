package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	alertResetJob   *AlertResetJob
	staleLoadingJob *StaleLoadingJob
}

type Schedules struct {
	AlertReset        string
	StaleLoading      string
	StaleLoadingAfter time.Duration
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	resetHandler alertResetter,
	orders staleLoadingFinder,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		alertResetJob:   NewAlertResetJob(resetHandler, schedules.AlertReset, logger),
		staleLoadingJob: NewStaleLoadingJob(orders, schedules.StaleLoadingAfter, schedules.StaleLoading, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.alertResetJob.Start(); err != nil {
		return fmt.Errorf("failed to start alert reset job: %w", err)
	}

	if err := jm.staleLoadingJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.alertResetJob.Stop()
		return fmt.Errorf("failed to start stale loading monitor: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleLoadingJob.Stop()
	jm.alertResetJob.Stop()
}
