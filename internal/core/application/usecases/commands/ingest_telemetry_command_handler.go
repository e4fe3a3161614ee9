package commands

import (
	"context"
	"log/slog"
	"time"

	"loading/internal/core/domain/model/alarm"
	"loading/internal/core/domain/model/order"
	"loading/internal/core/ports"
	"loading/internal/pkg/errs"
	"loading/internal/pkg/metrics"
)

// IngestTelemetryResult is the stored detail and what alerting did with it. Alarm is
// set only when Outcome is alarm.Sent.
type IngestTelemetryResult struct {
	Detail  *order.Detail
	Outcome alarm.Outcome
	Alarm   *alarm.Alarm
}

// IngestTelemetryCommandHandler stores a reading, refreshes the order readout and
// evaluates the temperature threshold.
//
// The work is split in two transactions. The first stores the detail and the order
// (starting loading on the first reading of a TaraRegistered order) and retries on
// version conflicts. The second evaluates alerting: the dedup flag is claimed with a
// compare-and-set, so of several concurrent breaching readings exactly one creates
// the Alarm and notifies. Notifications and events are sent after both commits.
//
// Readings for Pending or Finalized orders are stored and shown in the readout but do
// not change the order status.
type IngestTelemetryCommandHandler struct {
	telemetryFactory TelemetryUoWFactory
	alertFactory     AlertUoWFactory
	notifier         ports.Notifier
	publisher        ports.EventPublisher
	statusLog        statusLogger
	logger           *slog.Logger
}

func NewIngestTelemetryCommandHandler(
	telemetryFactory TelemetryUoWFactory,
	alertFactory AlertUoWFactory,
	notifier ports.Notifier,
	publisher ports.EventPublisher,
	statusLog ports.StatusLogRepository,
	logger *slog.Logger,
) IngestTelemetryCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return IngestTelemetryCommandHandler{
		telemetryFactory: telemetryFactory,
		alertFactory:     alertFactory,
		notifier:         notifier,
		publisher:        publisher,
		statusLog:        newStatusLogger(statusLog, logger),
		logger:           logger.With("component", "telemetry"),
	}
}

// Handle returns the stored detail even when alerting fails, for example with
// alarm.ErrNoRecipientsConfigured: the reading itself is never lost.
func (h *IngestTelemetryCommandHandler) Handle(
	ctx context.Context,
	cmd IngestTelemetryCommand,
) (IngestTelemetryResult, error) {
	if err := cmd.Validate(); err != nil {
		return IngestTelemetryResult{}, err
	}

	var (
		detail      *order.Detail
		transitions []order.Transition
	)
	err := retryOnConflict(ctx, telemetryAttempts, func() error {
		var err error
		detail, transitions, err = h.store(ctx, cmd)
		return err
	})
	if err != nil {
		return IngestTelemetryResult{}, errs.WrapUnexpected("ingest telemetry", err)
	}

	metrics.RecordTelemetry()
	h.statusLog.record(ctx, transitions)
	h.publishReading(ctx, detail)

	result := IngestTelemetryResult{Detail: detail, Outcome: alarm.NotSent}

	a, recipients, err := h.evaluate(ctx, cmd.OrderNumber(), cmd.Reading())
	if err != nil {
		return result, errs.WrapUnexpected("evaluate temperature alert", err)
	}
	if a == nil {
		return result, nil
	}

	h.notify(ctx, a, recipients)
	h.publishAlarm(ctx, a)

	result.Outcome = alarm.Sent
	result.Alarm = a
	return result, nil
}

func (h *IngestTelemetryCommandHandler) store(
	ctx context.Context,
	cmd IngestTelemetryCommand,
) (*order.Detail, []order.Transition, error) {
	uow := h.telemetryFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderNumber())
	if err != nil {
		return nil, nil, err
	}

	changed := false
	if o.Status() == order.TaraRegistered {
		if err = o.BeginLoading(time.Now()); err != nil {
			return nil, nil, err
		}
		changed = true
	}

	refreshed, err := o.ApplyReading(cmd.Reading())
	if err != nil {
		return nil, nil, err
	}
	changed = changed || refreshed

	detail, err := order.NewDetail(o.Number(), cmd.Reading())
	if err != nil {
		return nil, nil, err
	}
	if err = uow.OrderDetailRepository().Add(ctx, detail); err != nil {
		return nil, nil, err
	}

	if changed {
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return detail, o.Transitions(), nil
}

// evaluate returns the created alarm and the recipients to notify, or a nil alarm
// when nothing must be sent.
func (h *IngestTelemetryCommandHandler) evaluate(
	ctx context.Context,
	orderNumber string,
	r order.Reading,
) (*alarm.Alarm, []string, error) {
	uow := h.alertFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	configRepo := uow.AlertConfigRepository()
	cfg, err := configRepo.Get(ctx)
	if err != nil {
		return nil, nil, err
	}

	if cfg.EmailAlreadySent() || !cfg.IsBreachedBy(r.Temperature()) {
		return nil, nil, uow.Commit(ctx)
	}

	if err = cfg.CheckRecipients(); err != nil {
		return nil, nil, err
	}

	claimed, err := configRepo.ClaimNotification(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !claimed {
		metrics.RecordAlert(string(alarm.NotSent))
		return nil, nil, uow.Commit(ctx)
	}

	a, err := alarm.NewAlarm(orderNumber, r.Timestamp(), r.Temperature(), cfg.Threshold())
	if err != nil {
		return nil, nil, err
	}
	if err = uow.AlarmRepository().Add(ctx, a); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	metrics.RecordAlert(string(alarm.Sent))
	return a, cfg.Recipients(), nil
}

func (h *IngestTelemetryCommandHandler) notify(ctx context.Context, a *alarm.Alarm, recipients []string) {
	if h.notifier == nil {
		return
	}

	msg := ports.AlertMessage{
		AlarmID:     a.ID(),
		OrderNumber: a.OrderNumber(),
		Temperature: a.CurrentTemperature(),
		Threshold:   a.ThresholdTemperature(),
		At:          a.EventAt(),
	}
	for _, recipient := range recipients {
		if err := h.notifier.Notify(ctx, recipient, msg); err != nil {
			metrics.RecordNotificationFailure()
			h.logger.ErrorContext(ctx, "failed to notify alert recipient",
				"order", a.OrderNumber(),
				"recipient", recipient,
				"error", err,
			)
		}
	}
}

func (h *IngestTelemetryCommandHandler) publishReading(ctx context.Context, d *order.Detail) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishReading(ctx, d); err != nil {
		h.logger.WarnContext(ctx, "failed to publish reading", "order", d.OrderNumber(), "error", err)
	}
}

func (h *IngestTelemetryCommandHandler) publishAlarm(ctx context.Context, a *alarm.Alarm) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishAlarm(ctx, a); err != nil {
		h.logger.WarnContext(ctx, "failed to publish alarm", "order", a.OrderNumber(), "error", err)
	}
}
