package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"loading/internal/core/application/intake"
	"loading/internal/core/domain/model/order"
	"loading/internal/core/ports"
	"loading/internal/pkg/errs"
	"loading/internal/pkg/metrics"
)

// CreateOrderFromPayloadCommandHandler normalizes an intake document, resolves its
// masters and stores a Pending order.
//
// Masters are resolved before the order transaction is opened, each lookup and insert
// on its own, so a slow master insert never holds the order row.
type CreateOrderFromPayloadCommandHandler struct {
	uowFactory IntakeUoWFactory
	normalizer intake.Normalizer
	statusLog  statusLogger
}

func NewCreateOrderFromPayloadCommandHandler(
	uowFactory IntakeUoWFactory,
	statusLog ports.StatusLogRepository,
	logger *slog.Logger,
) CreateOrderFromPayloadCommandHandler {
	return CreateOrderFromPayloadCommandHandler{
		uowFactory: uowFactory,
		normalizer: intake.NewNormalizer(time.Now),
		statusLog:  newStatusLogger(statusLog, logger),
	}
}

// Handle returns the created order, or an error classified as ValueIsRequired or
// ValueIsInvalid (payload), ObjectAlreadyExists (duplicate order number) or
// ProcessingFailure.
func (h *CreateOrderFromPayloadCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderFromPayloadCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := h.handle(ctx, cmd)
	switch {
	case err == nil:
		metrics.RecordIntake(string(cmd.Schema()), metrics.ResultOK)
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		metrics.RecordIntake(string(cmd.Schema()), metrics.ResultRejected)
	default:
		metrics.RecordIntake(string(cmd.Schema()), metrics.ResultFailed)
	}
	if err != nil {
		return nil, errs.WrapUnexpected("create order from payload", err)
	}

	h.statusLog.record(ctx, o.Transitions())
	return o, nil
}

func (h *CreateOrderFromPayloadCommandHandler) handle(
	ctx context.Context,
	cmd CreateOrderFromPayloadCommand,
) (*order.Order, error) {
	payload, err := h.normalizer.Normalize(cmd.Document(), cmd.Schema())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	// Cheap early rejection; the primary key still decides under a race.
	_, err = uow.OrderRepository().Get(ctx, payload.OrderNumber)
	switch {
	case err == nil:
		return nil, errs.NewObjectAlreadyExistsError("order", payload.OrderNumber)
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	refs, err := NewMasterResolver(uow.MasterRepository()).Resolve(ctx, payload)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		payload.OrderNumber,
		payload.ExternalCode,
		payload.ScheduledDate,
		payload.Preset,
		refs,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
