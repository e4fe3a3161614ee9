package commands

import (
	"context"
	"log/slog"
	"time"

	"loading/internal/core/domain/model/kernel"
	"loading/internal/core/domain/model/order"
	"loading/internal/core/ports"
	"loading/internal/pkg/errs"
)

// RegisterInitialWeighingCommandHandler moves a Pending order to TaraRegistered and
// issues its activation code.
//
// Activation codes are random and not checked against other orders; a collision is
// possible and accepted.
//
// Example:
//
//	cmd, _ := NewRegisterInitialWeighingCommand("OC-1001", 14250)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrStateIsInvalid) {
//	    // tare already registered
//	}
type RegisterInitialWeighingCommandHandler struct {
	uowFactory OrderUoWFactory
	statusLog  statusLogger
}

func NewRegisterInitialWeighingCommandHandler(
	uowFactory OrderUoWFactory,
	statusLog ports.StatusLogRepository,
	logger *slog.Logger,
) RegisterInitialWeighingCommandHandler {
	return RegisterInitialWeighingCommandHandler{
		uowFactory: uowFactory,
		statusLog:  newStatusLogger(statusLog, logger),
	}
}

func (h *RegisterInitialWeighingCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterInitialWeighingCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var o *order.Order
	err := retryOnConflict(ctx, weighingAttempts, func() error {
		var err error
		o, err = applyToOrder(ctx, h.uowFactory, cmd.OrderNumber(), func(o *order.Order) error {
			return o.RegisterInitialWeighing(cmd.Weight(), kernel.NewRandomActivationCode(), time.Now())
		})
		return err
	})
	if err != nil {
		return nil, errs.WrapUnexpected("register initial weighing", err)
	}

	h.statusLog.record(ctx, o.Transitions())
	return o, nil
}
