package commands

import (
	"context"

	"loading/internal/pkg/errs"
)

type ResetAlertDedupCommandHandler struct {
	uowFactory AlertUoWFactory
}

func NewResetAlertDedupCommandHandler(uowFactory AlertUoWFactory) ResetAlertDedupCommandHandler {
	return ResetAlertDedupCommandHandler{uowFactory: uowFactory}
}

// Handle clears the dedup flag. Resetting an already clear flag is a no-op.
func (h *ResetAlertDedupCommandHandler) Handle(ctx context.Context, cmd ResetAlertDedupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.WrapUnexpected("reset alert dedup", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.AlertConfigRepository().ResetNotification(ctx); err != nil {
		return errs.WrapUnexpected("reset alert dedup", err)
	}

	return errs.WrapUnexpected("reset alert dedup", uow.Commit(ctx))
}
