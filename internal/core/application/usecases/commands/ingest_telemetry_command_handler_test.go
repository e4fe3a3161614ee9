package commands_test

import (
	"sync"
	"testing"
	"time"

	"loading/internal/core/application/usecases/commands"
	"loading/internal/core/domain/model/alarm"
	"loading/internal/core/domain/model/kernel"
	"loading/internal/core/domain/model/order"
	"loading/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var readingStart = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

type telemetryFixture struct {
	store     *memoryStore
	notifier  *recordingNotifier
	publisher *recordingPublisher
	handler   commands.IngestTelemetryCommandHandler
	resetter  commands.ResetAlertDedupCommandHandler
}

func newTelemetryFixture(t *testing.T) *telemetryFixture {
	t.Helper()
	store := newMemoryStore()
	f := &telemetryFixture{
		store:     store,
		notifier:  &recordingNotifier{},
		publisher: &recordingPublisher{},
	}
	f.handler = commands.NewIngestTelemetryCommandHandler(
		memoryTelemetryFactory{store},
		memoryAlertFactory{store},
		f.notifier,
		f.publisher,
		memoryStatusLog{store},
		nil,
	)
	f.resetter = commands.NewResetAlertDedupCommandHandler(memoryAlertFactory{store})
	return f
}

func taraRegisteredOrder(t *testing.T, number string) *order.Order {
	t.Helper()
	tare, err := kernel.NewWeight(1000)
	require.NoError(t, err)
	code := kernel.NewRandomActivationCode()
	at := readingStart.Add(-time.Hour)
	o, err := order.RestoreOrder(order.Snapshot{
		Number:            number,
		ScheduledDate:     at,
		Preset:            9000,
		Status:            order.TaraRegistered,
		InitialWeight:     &tare,
		ActivationCode:    &code,
		InitialWeighingAt: &at,
	})
	require.NoError(t, err)
	return o
}

func (f *telemetryFixture) ingest(t *testing.T, number string, at time.Time, temperature float64) (commands.IngestTelemetryResult, error) {
	t.Helper()
	cmd, err := commands.NewIngestTelemetryCommand(number, at, 100, 850, temperature, 120)
	require.NoError(t, err)
	return f.handler.Handle(t.Context(), cmd)
}

func TestIngestTelemetryCommandHandler_SingleAlarmPerBreachSequence(t *testing.T) {
	f := newTelemetryFixture(t)
	f.store.put(taraRegisteredOrder(t, "OC-1"))
	f.store.setConfig(5.0, "ops@plant.test", "qa@plant.test")

	var outcomes []alarm.Outcome
	for i, temp := range []float64{3.0, 6.0, 7.0} {
		res, err := f.ingest(t, "OC-1", readingStart.Add(time.Duration(i)*time.Second), temp)
		require.NoError(t, err)
		require.NotNil(t, res.Detail)
		outcomes = append(outcomes, res.Outcome)
	}

	assert.Equal(t, []alarm.Outcome{alarm.NotSent, alarm.Sent, alarm.NotSent}, outcomes)

	alarms := f.store.alarmList()
	require.Len(t, alarms, 1)
	assert.InDelta(t, 6.0, alarms[0].CurrentTemperature(), 1e-9)
	assert.InDelta(t, 5.0, alarms[0].ThresholdTemperature(), 1e-9)
	assert.Equal(t, readingStart.Add(time.Second), alarms[0].EventAt())

	assert.Equal(t, 2, f.notifier.count(), "one message per recipient")
	assert.Equal(t, 3, f.store.detailCount())
	assert.Equal(t, 3, f.publisher.readings)
	assert.Equal(t, 1, f.publisher.alarms)
}

func TestIngestTelemetryCommandHandler_BeginsLoadingOnFirstReading(t *testing.T) {
	f := newTelemetryFixture(t)
	f.store.put(taraRegisteredOrder(t, "OC-1"))

	_, err := f.ingest(t, "OC-1", readingStart, 3)
	require.NoError(t, err)
	_, err = f.ingest(t, "OC-1", readingStart.Add(time.Second), 3)
	require.NoError(t, err)

	snap := f.store.order("OC-1")
	assert.Equal(t, order.Loading, snap.Status)
	assert.NotNil(t, snap.StartLoadingAt)
	require.NotNil(t, snap.Readout)
	assert.Equal(t, readingStart.Add(time.Second), snap.Readout.Timestamp())

	require.Len(t, f.store.statusLog, 1)
	assert.Equal(t, order.ActorTelemetry, f.store.statusLog[0].Actor)
	assert.Equal(t, order.Loading, f.store.statusLog[0].To)
}

func TestIngestTelemetryCommandHandler_OlderReadingKeepsReadout(t *testing.T) {
	f := newTelemetryFixture(t)
	f.store.put(taraRegisteredOrder(t, "OC-1"))

	_, err := f.ingest(t, "OC-1", readingStart.Add(time.Minute), 3)
	require.NoError(t, err)
	res, err := f.ingest(t, "OC-1", readingStart, 4)
	require.NoError(t, err)

	assert.NotZero(t, res.Detail.ID())
	assert.Equal(t, 2, f.store.detailCount())
	assert.Equal(t, readingStart.Add(time.Minute), f.store.order("OC-1").Readout.Timestamp())
}

func TestIngestTelemetryCommandHandler_ResetRearmsAlerting(t *testing.T) {
	f := newTelemetryFixture(t)
	f.store.put(taraRegisteredOrder(t, "OC-1"))
	f.store.setConfig(5.0, "ops@plant.test")

	res, err := f.ingest(t, "OC-1", readingStart, 6)
	require.NoError(t, err)
	assert.Equal(t, alarm.Sent, res.Outcome)

	for i := 1; i <= 5; i++ {
		res, err = f.ingest(t, "OC-1", readingStart.Add(time.Duration(i)*time.Second), 9)
		require.NoError(t, err)
		assert.Equal(t, alarm.NotSent, res.Outcome)
	}
	assert.Equal(t, 1, f.notifier.count())

	require.NoError(t, f.resetter.Handle(t.Context(), commands.NewResetAlertDedupCommand()))

	res, err = f.ingest(t, "OC-1", readingStart.Add(time.Minute), 7)
	require.NoError(t, err)
	assert.Equal(t, alarm.Sent, res.Outcome)
	require.NotNil(t, res.Alarm)
	assert.Len(t, f.store.alarmList(), 2)
	assert.Equal(t, 2, f.notifier.count())
}

func TestIngestTelemetryCommandHandler_NoRecipients(t *testing.T) {
	f := newTelemetryFixture(t)
	f.store.put(taraRegisteredOrder(t, "OC-1"))

	res, err := f.ingest(t, "OC-1", readingStart, 6)

	require.ErrorIs(t, err, alarm.ErrNoRecipientsConfigured)
	require.NotNil(t, res.Detail, "reading is stored even though alerting failed")
	assert.Equal(t, alarm.NotSent, res.Outcome)
	assert.Equal(t, 1, f.store.detailCount())
	assert.Empty(t, f.store.alarmList())
}

func TestIngestTelemetryCommandHandler_NotificationFailureStillSent(t *testing.T) {
	f := newTelemetryFixture(t)
	f.notifier.fails = true
	f.store.put(taraRegisteredOrder(t, "OC-1"))
	f.store.setConfig(5.0, "ops@plant.test")

	res, err := f.ingest(t, "OC-1", readingStart, 6)

	require.NoError(t, err)
	assert.Equal(t, alarm.Sent, res.Outcome)
	assert.Len(t, f.store.alarmList(), 1)
}

func TestIngestTelemetryCommandHandler_ConcurrentBreachesNotifyOnce(t *testing.T) {
	f := newTelemetryFixture(t)
	o := taraRegisteredOrder(t, "OC-1")
	f.store.put(o)
	f.store.setConfig(5.0, "ops@plant.test", "qa@plant.test")

	// Establish a late readout so the concurrent, older readings only add history.
	_, err := f.ingest(t, "OC-1", readingStart.Add(time.Hour), 3)
	require.NoError(t, err)

	const workers = 16
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		outcomes = map[alarm.Outcome]int{}
	)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cmd, err := commands.NewIngestTelemetryCommand("OC-1", readingStart.Add(time.Duration(i)*time.Second), 100, 850, 9, 120)
			if !assert.NoError(t, err) {
				return
			}
			res, err := f.handler.Handle(t.Context(), cmd)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			outcomes[res.Outcome]++
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, outcomes[alarm.Sent])
	assert.Equal(t, workers-1, outcomes[alarm.NotSent])
	assert.Len(t, f.store.alarmList(), 1)
	assert.Equal(t, 2, f.notifier.count())
	assert.Equal(t, workers+1, f.store.detailCount())
}

func TestIngestTelemetryCommandHandler_UnknownOrder(t *testing.T) {
	f := newTelemetryFixture(t)

	_, err := f.ingest(t, "OC-404", readingStart, 3)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Zero(t, f.store.detailCount())
}

func TestIngestTelemetryCommandHandler_PendingOrderKeepsStatus(t *testing.T) {
	f := newTelemetryFixture(t)
	o, err := order.NewOrder("OC-1", "", readingStart, 100, order.References{}, readingStart)
	require.NoError(t, err)
	f.store.put(o)

	_, err = f.ingest(t, "OC-1", readingStart, 3)

	require.NoError(t, err)
	snap := f.store.order("OC-1")
	assert.Equal(t, order.Pending, snap.Status)
	require.NotNil(t, snap.Readout)
	assert.Equal(t, 1, f.store.detailCount())
}

func TestIngestTelemetryCommandHandler_ValidationError(t *testing.T) {
	f := newTelemetryFixture(t)

	_, err := f.handler.Handle(t.Context(), commands.IngestTelemetryCommand{})

	require.ErrorIs(t, err, commands.ErrIngestTelemetryCommandIsNotConstructed)
}

func TestNewIngestTelemetryCommand(t *testing.T) {
	_, err := commands.NewIngestTelemetryCommand(" ", readingStart, 1, 1, 1, 1)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewIngestTelemetryCommand("OC-1", time.Time{}, 1, 1, 1, 1)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewIngestTelemetryCommand(" OC-1 ", readingStart, 1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, "OC-1", cmd.OrderNumber())
	assert.InDelta(t, 3.0, cmd.Reading().Temperature(), 1e-9)
}
