package commands_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"loading/internal/core/application/usecases/commands"
	"loading/internal/core/domain/model/alarm"
	"loading/internal/core/domain/model/order"
	"loading/internal/core/ports"
	"loading/internal/pkg/errs"
)

// memoryStore is an in-memory stand-in for the database with the same version and
// compare-and-set rules as the GORM repositories. Transactions are not modelled.
type memoryStore struct {
	mu           sync.Mutex
	orders       map[string]order.Snapshot
	details      []*order.Detail
	nextDetailID int64
	alarms       map[int64]*alarm.Alarm
	nextAlarmID  int64
	config       *alarm.AlertConfig
	statusLog    []order.Transition
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		orders: make(map[string]order.Snapshot),
		alarms: make(map[int64]*alarm.Alarm),
	}
}

func (s *memoryStore) put(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.Number()] = o.Snapshot()
}

func (s *memoryStore) order(number string) order.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[number]
}

func (s *memoryStore) detailCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.details)
}

func (s *memoryStore) alarmList() []*alarm.Alarm {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*alarm.Alarm, 0, len(s.alarms))
	for _, a := range s.alarms {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (s *memoryStore) setConfig(threshold float64, recipients ...string) {
	cfg, err := alarm.NewAlertConfig(threshold, recipients, false)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = &cfg
}

type memoryUoW struct{ s *memoryStore }

func (u memoryUoW) Begin(context.Context) error    { return nil }
func (u memoryUoW) Commit(context.Context) error   { return nil }
func (u memoryUoW) Rollback(context.Context) error { return nil }

func (u memoryUoW) OrderRepository() ports.OrderRepository             { return memoryOrderRepo(u) }
func (u memoryUoW) OrderDetailRepository() ports.OrderDetailRepository { return memoryDetailRepo(u) }
func (u memoryUoW) AlarmRepository() ports.AlarmRepository             { return memoryAlarmRepo(u) }
func (u memoryUoW) AlertConfigRepository() ports.AlertConfigRepository { return memoryConfigRepo(u) }

type memoryTelemetryFactory struct{ s *memoryStore }

func (f memoryTelemetryFactory) Create() commands.TelemetryUoW { return memoryUoW(f) }

type memoryAlertFactory struct{ s *memoryStore }

func (f memoryAlertFactory) Create() commands.AlertUoW { return memoryUoW(f) }

type memoryOrderFactory struct{ s *memoryStore }

func (f memoryOrderFactory) Create() commands.OrderUoW { return memoryUoW(f) }

type memoryOrderRepo struct{ s *memoryStore }

func (r memoryOrderRepo) Add(_ context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[o.Number()]; ok {
		return errs.NewObjectAlreadyExistsError("order", o.Number())
	}
	r.s.orders[o.Number()] = o.Snapshot()
	return nil
}

func (r memoryOrderRepo) Update(_ context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.orders[o.Number()]
	if !ok {
		return errs.NewObjectNotFoundError("order", o.Number())
	}
	if stored.Version != o.Version() {
		return errs.NewVersionIsInvalidError("order")
	}
	snap := o.Snapshot()
	snap.Version++
	r.s.orders[o.Number()] = snap
	o.SetVersion(snap.Version)
	return nil
}

func (r memoryOrderRepo) Get(_ context.Context, number string) (*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	snap, ok := r.s.orders[number]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", number)
	}
	return order.RestoreOrder(snap)
}

func (r memoryOrderRepo) GetStaleLoading(context.Context, time.Time) ([]*order.Order, error) {
	return nil, nil
}

type memoryDetailRepo struct{ s *memoryStore }

func (r memoryDetailRepo) Add(_ context.Context, d *order.Detail) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextDetailID++
	d.AssignID(r.s.nextDetailID)
	r.s.details = append(r.s.details, d)
	return nil
}

func (r memoryDetailRepo) ListByOrder(_ context.Context, number string) ([]*order.Detail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*order.Detail
	for _, d := range r.s.details {
		if d.OrderNumber() == number {
			out = append(out, d)
		}
	}
	return out, nil
}

type memoryAlarmRepo struct{ s *memoryStore }

func (r memoryAlarmRepo) Add(_ context.Context, a *alarm.Alarm) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextAlarmID++
	a.AssignID(r.s.nextAlarmID)
	r.s.alarms[a.ID()] = a
	return nil
}

func (r memoryAlarmRepo) Update(_ context.Context, a *alarm.Alarm) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.alarms[a.ID()] = a
	return nil
}

func (r memoryAlarmRepo) Get(_ context.Context, id int64) (*alarm.Alarm, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.alarms[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("alarm", id)
	}
	return a, nil
}

type memoryConfigRepo struct{ s *memoryStore }

func (r memoryConfigRepo) Get(context.Context) (alarm.AlertConfig, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.config == nil {
		cfg := alarm.DefaultAlertConfig()
		r.s.config = &cfg
	}
	return *r.s.config, nil
}

func (r memoryConfigRepo) Save(_ context.Context, c alarm.AlertConfig) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sent := r.s.config != nil && r.s.config.EmailAlreadySent()
	cfg, err := alarm.NewAlertConfig(c.Threshold(), c.Recipients(), sent)
	if err != nil {
		return err
	}
	r.s.config = &cfg
	return nil
}

func (r memoryConfigRepo) ClaimNotification(context.Context) (bool, error) {
	return r.setFlag(true)
}

func (r memoryConfigRepo) ResetNotification(context.Context) error {
	_, err := r.setFlag(false)
	return err
}

func (r memoryConfigRepo) setFlag(sent bool) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current := alarm.DefaultAlertConfig()
	if r.s.config != nil {
		current = *r.s.config
	}
	if current.EmailAlreadySent() == sent {
		return false, nil
	}
	cfg, err := alarm.NewAlertConfig(current.Threshold(), current.Recipients(), sent)
	if err != nil {
		return false, err
	}
	r.s.config = &cfg
	return true, nil
}

type memoryStatusLog struct{ s *memoryStore }

func (l memoryStatusLog) Append(_ context.Context, transitions ...order.Transition) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	l.s.statusLog = append(l.s.statusLog, transitions...)
	return nil
}

type recordingNotifier struct {
	mu    sync.Mutex
	sent  []string
	fails bool
}

func (n *recordingNotifier) Notify(_ context.Context, recipient string, _ ports.AlertMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, recipient)
	if n.fails {
		return errs.NewProcessingFailureError("notify", nil)
	}
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type recordingPublisher struct {
	mu       sync.Mutex
	readings int
	alarms   int
}

func (p *recordingPublisher) PublishReading(context.Context, *order.Detail) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.readings++
	return nil
}

func (p *recordingPublisher) PublishAlarm(context.Context, *alarm.Alarm) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alarms++
	return nil
}
