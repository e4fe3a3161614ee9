package commands_test

import (
	"context"
	"time"

	"loading/internal/core/application/usecases/commands"
	"loading/internal/core/domain/model/alarm"
	"loading/internal/core/domain/model/master"
	"loading/internal/core/domain/model/order"
	"loading/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetStaleLoading(ctx context.Context, before time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, before)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderDetailRepository struct{ mock.Mock }

func (m *MockOrderDetailRepository) Add(ctx context.Context, d *order.Detail) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockOrderDetailRepository) ListByOrder(ctx context.Context, number string) ([]*order.Detail, error) {
	args := m.Called(ctx, number)
	return args.Get(0).([]*order.Detail), args.Error(1)
}

type MockStatusLogRepository struct{ mock.Mock }

func (m *MockStatusLogRepository) Append(ctx context.Context, transitions ...order.Transition) error {
	args := m.Called(ctx, transitions)
	return args.Error(0)
}

type MockMasterRepository struct{ mock.Mock }

func (m *MockMasterRepository) FindClientByCompanyName(ctx context.Context, name string) (*master.Client, bool, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*master.Client)
	return c, args.Bool(1), args.Error(2)
}

func (m *MockMasterRepository) AddClient(ctx context.Context, c *master.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockMasterRepository) FindDriverByDocumentNumber(ctx context.Context, doc string) (*master.Driver, bool, error) {
	args := m.Called(ctx, doc)
	d, _ := args.Get(0).(*master.Driver)
	return d, args.Bool(1), args.Error(2)
}

func (m *MockMasterRepository) AddDriver(ctx context.Context, d *master.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockMasterRepository) FindTruckByDomain(ctx context.Context, domain string) (*master.Truck, bool, error) {
	args := m.Called(ctx, domain)
	t, _ := args.Get(0).(*master.Truck)
	return t, args.Bool(1), args.Error(2)
}

func (m *MockMasterRepository) AddTruck(ctx context.Context, t *master.Truck) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockMasterRepository) FindProductByName(ctx context.Context, name string) (*master.Product, bool, error) {
	args := m.Called(ctx, name)
	p, _ := args.Get(0).(*master.Product)
	return p, args.Bool(1), args.Error(2)
}

func (m *MockMasterRepository) AddProduct(ctx context.Context, p *master.Product) error {
	return m.Called(ctx, p).Error(0)
}

type MockAlarmRepository struct{ mock.Mock }

func (m *MockAlarmRepository) Add(ctx context.Context, a *alarm.Alarm) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAlarmRepository) Update(ctx context.Context, a *alarm.Alarm) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAlarmRepository) Get(ctx context.Context, id int64) (*alarm.Alarm, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*alarm.Alarm)
	return a, args.Error(1)
}

type MockAlertConfigRepository struct{ mock.Mock }

func (m *MockAlertConfigRepository) Get(ctx context.Context) (alarm.AlertConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).(alarm.AlertConfig), args.Error(1)
}

func (m *MockAlertConfigRepository) Save(ctx context.Context, c alarm.AlertConfig) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockAlertConfigRepository) ClaimNotification(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockAlertConfigRepository) ResetNotification(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockUoW satisfies every narrowed unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OrderDetailRepository() ports.OrderDetailRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderDetailRepository)
}

func (m *MockUoW) MasterRepository() ports.MasterRepository {
	args := m.Called()
	return args.Get(0).(ports.MasterRepository)
}

func (m *MockUoW) AlarmRepository() ports.AlarmRepository {
	args := m.Called()
	return args.Get(0).(ports.AlarmRepository)
}

func (m *MockUoW) AlertConfigRepository() ports.AlertConfigRepository {
	args := m.Called()
	return args.Get(0).(ports.AlertConfigRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockIntakeUoWFactory struct{ mock.Mock }

func (m *MockIntakeUoWFactory) Create() commands.IntakeUoW {
	args := m.Called()
	return args.Get(0).(commands.IntakeUoW)
}

type MockAlertUoWFactory struct{ mock.Mock }

func (m *MockAlertUoWFactory) Create() commands.AlertUoW {
	args := m.Called()
	return args.Get(0).(commands.AlertUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, recipient string, msg ports.AlertMessage) error {
	return m.Called(ctx, recipient, msg).Error(0)
}
