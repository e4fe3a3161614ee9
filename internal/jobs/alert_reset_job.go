package jobs

import (
	"context"
	"log/slog"

	"loading/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type alertResetter interface {
	Handle(ctx context.Context, cmd commands.ResetAlertDedupCommand) error
}

// AlertResetJob re-arms temperature alerting on a schedule, typically at shift change.
type AlertResetJob struct {
	handler  alertResetter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAlertResetJob creates the job. An empty schedule disables it.
func NewAlertResetJob(handler alertResetter, schedule string, logger *slog.Logger) *AlertResetJob {
	return &AlertResetJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "alert_reset_job"),
	}
}

// Start registers the schedule and starts the scheduler. A malformed cron
// expression is returned as an error.
func (j *AlertResetJob) Start() error {
	if j.schedule == "" {
		j.logger.InfoContext(context.Background(), "Alert reset job disabled (no schedule)")
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Alert reset job started", "schedule", j.schedule)
	return nil
}

func (j *AlertResetJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Alert reset job stopped")
}

func (j *AlertResetJob) run(ctx context.Context) {
	if err := j.handler.Handle(ctx, commands.NewResetAlertDedupCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Alert reset job failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Temperature alerting re-armed")
}
