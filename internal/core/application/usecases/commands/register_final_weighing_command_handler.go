package commands

import (
	"context"
	"log/slog"
	"time"

	"loading/internal/core/domain/model/order"
	"loading/internal/core/ports"
	"loading/internal/pkg/errs"
)

// RegisterFinalWeighingCommandHandler finalizes a Loading order. A gross weight
// below the tare fails with order.ErrInvalidWeight and nothing is written.
type RegisterFinalWeighingCommandHandler struct {
	uowFactory OrderUoWFactory
	statusLog  statusLogger
}

func NewRegisterFinalWeighingCommandHandler(
	uowFactory OrderUoWFactory,
	statusLog ports.StatusLogRepository,
	logger *slog.Logger,
) RegisterFinalWeighingCommandHandler {
	return RegisterFinalWeighingCommandHandler{
		uowFactory: uowFactory,
		statusLog:  newStatusLogger(statusLog, logger),
	}
}

func (h *RegisterFinalWeighingCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterFinalWeighingCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var o *order.Order
	err := retryOnConflict(ctx, weighingAttempts, func() error {
		var err error
		o, err = applyToOrder(ctx, h.uowFactory, cmd.OrderNumber(), func(o *order.Order) error {
			return o.RegisterFinalWeighing(cmd.Weight(), time.Now())
		})
		return err
	})
	if err != nil {
		return nil, errs.WrapUnexpected("register final weighing", err)
	}

	h.statusLog.record(ctx, o.Transitions())
	return o, nil
}
