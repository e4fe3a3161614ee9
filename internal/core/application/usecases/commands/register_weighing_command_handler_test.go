package commands_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"loading/internal/core/application/usecases/commands"
	"loading/internal/core/domain/model/kernel"
	"loading/internal/core/domain/model/order"
	"loading/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T, number string) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{
		Number:        number,
		ScheduledDate: readingStart,
		Preset:        9000,
		Status:        order.Pending,
	})
	require.NoError(t, err)
	return o
}

func loadingOrderWithTare(t *testing.T, number string, tare float64) *order.Order {
	t.Helper()
	o := taraRegisteredOrder(t, number)
	if tare != 1000 {
		w, err := kernel.NewWeight(tare)
		require.NoError(t, err)
		snap := o.Snapshot()
		snap.InitialWeight = &w
		o, err = order.RestoreOrder(snap)
		require.NoError(t, err)
	}
	require.NoError(t, o.BeginLoading(readingStart))
	snap := o.Snapshot()
	restored, err := order.RestoreOrder(snap)
	require.NoError(t, err)
	return restored
}

func TestRegisterInitialWeighingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterInitialWeighingCommand("OC-1", 14250)

	repo := new(MockOrderRepository)
	statusLog := new(MockStatusLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, "OC-1").Return(pendingOrder(t, "OC-1"), nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	var logged []order.Transition
	statusLog.On("Append", ctx, mock.Anything).
		Run(func(args mock.Arguments) { logged = args.Get(1).([]order.Transition) }).
		Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterInitialWeighingCommandHandler(factory, statusLog, nil)
	o, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.TaraRegistered, o.Status())
	require.NotNil(t, o.ActivationCode())
	assert.Regexp(t, regexp.MustCompile(`^\d{5}$`), o.ActivationCode().String())
	assert.InDelta(t, 14250.0, o.InitialWeight().Kilograms(), 1e-9)

	require.Len(t, logged, 1)
	assert.Equal(t, order.ActorTMS, logged[0].Actor)
	assert.Contains(t, logged[0].Note, "14250.00 kg")
	require.NotNil(t, logged[0].From)
	assert.Equal(t, order.Pending, *logged[0].From)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterInitialWeighingCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterInitialWeighingCommand("OC-404", 14250)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, "OC-404").Return(nil, errs.NewObjectNotFoundError("order", "OC-404")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterInitialWeighingCommandHandler(factory, nil, nil)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRegisterInitialWeighingCommandHandler_Handle_InvalidState(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterInitialWeighingCommand("OC-1", 14250)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, "OC-1").Return(taraRegisteredOrder(t, "OC-1"), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterInitialWeighingCommandHandler(factory, nil, nil)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRegisterInitialWeighingCommandHandler_Handle_LostRaceReportsState(t *testing.T) {
	store := newMemoryStore()
	store.put(pendingOrder(t, "OC-1"))
	h := commands.NewRegisterInitialWeighingCommandHandler(memoryOrderFactory{store}, nil, nil)

	first, _ := commands.NewRegisterInitialWeighingCommand("OC-1", 14250)
	second, _ := commands.NewRegisterInitialWeighingCommand("OC-1", 14300)

	_, err := h.Handle(t.Context(), first)
	require.NoError(t, err)
	_, err = h.Handle(t.Context(), second)

	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	snap := store.order("OC-1")
	assert.InDelta(t, 14250.0, snap.InitialWeight.Kilograms(), 1e-9)
	assert.Equal(t, 1, snap.Version)
}

func TestRegisterInitialWeighingCommandHandler_Handle_VersionConflictRetries(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterInitialWeighingCommand("OC-1", 14250)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(repo).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()
	repo.On("Get", ctx, "OC-1").Return(pendingOrder(t, "OC-1"), nil).Once()
	repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(errs.NewVersionIsInvalidError("order")).Once()
	repo.On("Get", ctx, "OC-1").Return(taraRegisteredOrder(t, "OC-1"), nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Twice()

	h := commands.NewRegisterInitialWeighingCommandHandler(factory, nil, nil)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	factory.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestRegisterInitialWeighingCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewRegisterInitialWeighingCommandHandler(factory, nil, nil)

	_, err := h.Handle(t.Context(), commands.RegisterInitialWeighingCommand{})

	require.ErrorIs(t, err, commands.ErrRegisterInitialWeighingCommandIsNotConstructed)
}

func TestRegisterFinalWeighingCommandHandler_Handle_Success(t *testing.T) {
	store := newMemoryStore()
	store.put(loadingOrderWithTare(t, "OC-1", 1000))
	statusLog := memoryStatusLog{store}
	h := commands.NewRegisterFinalWeighingCommandHandler(memoryOrderFactory{store}, statusLog, nil)

	cmd, _ := commands.NewRegisterFinalWeighingCommand("OC-1", 9500)
	o, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Finalized, o.Status())
	assert.NotNil(t, o.EndWeighingAt())
	assert.Equal(t, order.Finalized, store.order("OC-1").Status)
	require.Len(t, store.statusLog, 1)
	assert.Equal(t, order.ActorTMS, store.statusLog[0].Actor)
}

func TestRegisterFinalWeighingCommandHandler_Handle_LighterThanTare(t *testing.T) {
	store := newMemoryStore()
	store.put(loadingOrderWithTare(t, "OC-1", 1000))
	before := store.order("OC-1")
	h := commands.NewRegisterFinalWeighingCommandHandler(memoryOrderFactory{store}, memoryStatusLog{store}, nil)

	cmd, _ := commands.NewRegisterFinalWeighingCommand("OC-1", 999.5)
	_, err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, order.ErrInvalidWeight)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Equal(t, before, store.order("OC-1"))
	assert.Empty(t, store.statusLog)
}

func TestRegisterFinalWeighingCommandHandler_Handle_NotLoading(t *testing.T) {
	store := newMemoryStore()
	store.put(taraRegisteredOrder(t, "OC-1"))
	h := commands.NewRegisterFinalWeighingCommandHandler(memoryOrderFactory{store}, nil, nil)

	cmd, _ := commands.NewRegisterFinalWeighingCommand("OC-1", 9500)
	_, err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	assert.Equal(t, order.TaraRegistered, store.order("OC-1").Status)
}

func TestRegisterFinalWeighingCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterFinalWeighingCommand("OC-1", 9500)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, "OC-1").Return(loadingOrderWithTare(t, "OC-1", 1000), nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterFinalWeighingCommandHandler(factory, nil, nil)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrProcessingFailure)
	uow.AssertExpectations(t)
}

func TestWeighingHandlers_FullLifecycle(t *testing.T) {
	store := newMemoryStore()
	store.put(pendingOrder(t, "OC-1"))

	initial := commands.NewRegisterInitialWeighingCommandHandler(memoryOrderFactory{store}, memoryStatusLog{store}, nil)
	final := commands.NewRegisterFinalWeighingCommandHandler(memoryOrderFactory{store}, memoryStatusLog{store}, nil)
	telemetry := newTelemetryFixture(t)
	telemetry.store = store
	telemetry.handler = commands.NewIngestTelemetryCommandHandler(
		memoryTelemetryFactory{store}, memoryAlertFactory{store}, nil, nil, memoryStatusLog{store}, nil,
	)

	finalCmd, _ := commands.NewRegisterFinalWeighingCommand("OC-1", 9500)
	_, err := final.Handle(t.Context(), finalCmd)
	require.ErrorIs(t, err, errs.ErrStateIsInvalid, "cannot skip states")

	initialCmd, _ := commands.NewRegisterInitialWeighingCommand("OC-1", 1000)
	_, err = initial.Handle(t.Context(), initialCmd)
	require.NoError(t, err)

	_, err = final.Handle(t.Context(), finalCmd)
	require.ErrorIs(t, err, errs.ErrStateIsInvalid, "loading starts with telemetry")

	_, err = telemetry.ingest(t, "OC-1", readingStart.Add(time.Minute), 3)
	require.NoError(t, err)

	_, err = final.Handle(t.Context(), finalCmd)
	require.NoError(t, err)

	_, err = initial.Handle(t.Context(), initialCmd)
	require.ErrorIs(t, err, errs.ErrStateIsInvalid, "no backward transition")

	var states []order.Status
	for _, tr := range store.statusLog {
		states = append(states, tr.To)
	}
	assert.Equal(t, []order.Status{order.TaraRegistered, order.Loading, order.Finalized}, states)
}
