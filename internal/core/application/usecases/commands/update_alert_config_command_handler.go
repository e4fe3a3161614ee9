package commands

import (
	"context"

	"loading/internal/core/domain/model/alarm"
	"loading/internal/pkg/errs"
)

// UpdateAlertConfigCommandHandler stores a new threshold and recipient list. The
// dedup flag keeps its value; only ResetAlertDedup clears it.
type UpdateAlertConfigCommandHandler struct {
	uowFactory AlertUoWFactory
}

func NewUpdateAlertConfigCommandHandler(uowFactory AlertUoWFactory) UpdateAlertConfigCommandHandler {
	return UpdateAlertConfigCommandHandler{uowFactory: uowFactory}
}

// Handle returns the configuration as stored, dedup flag included.
func (h *UpdateAlertConfigCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateAlertConfigCommand,
) (alarm.AlertConfig, error) {
	if err := cmd.Validate(); err != nil {
		return alarm.AlertConfig{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return alarm.AlertConfig{}, errs.WrapUnexpected("update alert config", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AlertConfigRepository()
	if err := repo.Save(ctx, cmd.Config()); err != nil {
		return alarm.AlertConfig{}, errs.WrapUnexpected("update alert config", err)
	}

	stored, err := repo.Get(ctx)
	if err != nil {
		return alarm.AlertConfig{}, errs.WrapUnexpected("update alert config", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return alarm.AlertConfig{}, errs.WrapUnexpected("update alert config", err)
	}

	return stored, nil
}
