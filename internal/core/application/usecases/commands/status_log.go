package commands

import (
	"context"
	"log/slog"

	"loading/internal/core/domain/model/order"
	"loading/internal/core/ports"
	"loading/internal/pkg/metrics"
)

// statusLogger appends committed transitions to the audit trail. Failures are logged
// and dropped: the transitions are already durable.
type statusLogger struct {
	repo   ports.StatusLogRepository
	logger *slog.Logger
}

func newStatusLogger(repo ports.StatusLogRepository, logger *slog.Logger) statusLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return statusLogger{repo: repo, logger: logger}
}

func (s statusLogger) record(ctx context.Context, transitions []order.Transition) {
	if len(transitions) == 0 {
		return
	}

	for _, t := range transitions {
		metrics.RecordTransition(t.To.String(), string(t.Actor))
	}

	if s.repo == nil {
		return
	}
	if err := s.repo.Append(ctx, transitions...); err != nil {
		metrics.RecordAuditFailure()
		s.logger.WarnContext(ctx, "failed to write status log",
			"order", transitions[0].OrderNumber,
			"transitions", len(transitions),
			"error", err,
		)
	}
}
