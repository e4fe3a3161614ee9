package commands

import (
	"context"
	"time"

	"loading/internal/core/domain/model/alarm"
	"loading/internal/pkg/errs"
)

// AcknowledgeAlarmCommandHandler marks an alarm as seen. It does not touch the alert
// dedup flag.
type AcknowledgeAlarmCommandHandler struct {
	uowFactory AlertUoWFactory
}

func NewAcknowledgeAlarmCommandHandler(uowFactory AlertUoWFactory) AcknowledgeAlarmCommandHandler {
	return AcknowledgeAlarmCommandHandler{uowFactory: uowFactory}
}

func (h *AcknowledgeAlarmCommandHandler) Handle(
	ctx context.Context,
	cmd AcknowledgeAlarmCommand,
) (*alarm.Alarm, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, errs.WrapUnexpected("acknowledge alarm", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	alarmRepo := uow.AlarmRepository()
	a, err := alarmRepo.Get(ctx, cmd.AlarmID())
	if err != nil {
		return nil, errs.WrapUnexpected("acknowledge alarm", err)
	}

	if err = a.Acknowledge(cmd.User(), cmd.Observations(), time.Now()); err != nil {
		return nil, err
	}

	if err = alarmRepo.Update(ctx, a); err != nil {
		return nil, errs.WrapUnexpected("acknowledge alarm", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.WrapUnexpected("acknowledge alarm", err)
	}

	return a, nil
}
