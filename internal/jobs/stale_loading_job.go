package jobs

import (
	"context"
	"log/slog"
	"time"

	"loading/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

const (
	DefaultStaleLoadingSchedule = "@every 1m"
	DefaultStaleLoadingAfter    = 10 * time.Minute
)

type staleLoadingFinder interface {
	GetStaleLoading(ctx context.Context, before time.Time) ([]*order.Order, error)
}

// StaleLoadingJob warns about orders stuck in LOADING with no recent telemetry.
// It only reads.
type StaleLoadingJob struct {
	orders   staleLoadingFinder
	after    time.Duration
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStaleLoadingJob(orders staleLoadingFinder, after time.Duration, schedule string, logger *slog.Logger) *StaleLoadingJob {
	if after <= 0 {
		after = DefaultStaleLoadingAfter
	}
	if schedule == "" {
		schedule = DefaultStaleLoadingSchedule
	}
	return &StaleLoadingJob{
		orders:   orders,
		after:    after,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(),
		logger:   logger.With("component", "stale_loading_job"),
	}
}

func (j *StaleLoadingJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale loading monitor started",
		"schedule", j.schedule,
		"after", j.after.String(),
	)
	return nil
}

func (j *StaleLoadingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale loading monitor stopped")
}

// run returns the number of stale orders found.
func (j *StaleLoadingJob) run(ctx context.Context) int {
	now := j.now().UTC()
	stale, err := j.orders.GetStaleLoading(ctx, now.Add(-j.after))
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale loading monitor failed", "error", err)
		return 0
	}

	for _, o := range stale {
		last := o.StartLoadingAt()
		if r := o.Readout(); r != nil {
			ts := r.Timestamp()
			last = &ts
		}

		attrs := []any{"order", o.Number()}
		if last != nil {
			attrs = append(attrs, "last_activity", last.Format(time.RFC3339), "silent_for", now.Sub(*last).Round(time.Second).String())
		}
		j.logger.WarnContext(ctx, "Order is loading without recent telemetry", attrs...)
	}
	return len(stale)
}
