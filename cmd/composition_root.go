package cmd

import (
	"log/slog"
	"time"

	httpin "loading/internal/adapters/in/http"
	"loading/internal/adapters/out/events"
	"loading/internal/adapters/out/notify"
	"loading/internal/adapters/out/postgres"
	"loading/internal/core/application/usecases/commands"
	"loading/internal/core/application/usecases/queries"
	"loading/internal/core/ports"
	"loading/internal/jobs"

	redis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const webhookTimeout = 5 * time.Second

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	notifier  ports.Notifier
	publisher ports.EventPublisher
	redis     *redis.Client
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}

	c := CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
	c.notifier = c.newNotifier()
	c.publisher = c.newPublisher()
	return c
}

func (c *CompositionRoot) newNotifier() ports.Notifier {
	var channels notify.Multi
	if c.cfg.SMTPHost != "" {
		channels = append(channels, notify.NewSMTPNotifier(notify.SMTPConfig{
			Host:     c.cfg.SMTPHost,
			Port:     c.cfg.SMTPPortNumber(),
			Username: c.cfg.SMTPUsername,
			Password: c.cfg.SMTPPassword,
			From:     c.cfg.SMTPFrom,
		}))
	}
	if c.cfg.AlertWebhookURL != "" {
		channels = append(channels, notify.NewWebhookNotifier(c.cfg.AlertWebhookURL, webhookTimeout))
	}

	switch len(channels) {
	case 0:
		c.logger.Warn("No alert channel configured, temperature alerts will not be delivered")
		return notify.NoOp{}
	case 1:
		return channels[0]
	default:
		return channels
	}
}

func (c *CompositionRoot) newPublisher() ports.EventPublisher {
	if c.cfg.RedisAddr == "" {
		return events.NoOp{}
	}
	c.redis = redis.NewClient(&redis.Options{Addr: c.cfg.RedisAddr})
	return events.NewRedisPublisher(c.redis, c.cfg.RedisChannel)
}

// Close releases connections owned by the root.
func (c *CompositionRoot) Close() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}

func (c *CompositionRoot) statusLog() ports.StatusLogRepository {
	return c.uowFactory.Create().StatusLogRepository()
}

func (c *CompositionRoot) CreateCreateOrderFromPayloadCommandHandler() commands.CreateOrderFromPayloadCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderFromPayloadCommandHandler(f, c.statusLog(), c.logger)
}

func (c *CompositionRoot) CreateRegisterInitialWeighingCommandHandler() commands.RegisterInitialWeighingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterInitialWeighingCommandHandler(f, c.statusLog(), c.logger)
}

func (c *CompositionRoot) CreateRegisterFinalWeighingCommandHandler() commands.RegisterFinalWeighingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterFinalWeighingCommandHandler(f, c.statusLog(), c.logger)
}

func (c *CompositionRoot) CreateIngestTelemetryCommandHandler() commands.IngestTelemetryCommandHandler {
	var telemetry commands.TelemetryUoWFactory = FuncTelemetryUoWFactory(func() commands.TelemetryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIngestTelemetryCommandHandler(
		telemetry,
		c.alertUoWFactory(),
		c.notifier,
		c.publisher,
		c.statusLog(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateAlertConfigCommandHandler() commands.UpdateAlertConfigCommandHandler {
	return commands.NewUpdateAlertConfigCommandHandler(c.alertUoWFactory())
}

func (c *CompositionRoot) CreateResetAlertDedupCommandHandler() commands.ResetAlertDedupCommandHandler {
	return commands.NewResetAlertDedupCommandHandler(c.alertUoWFactory())
}

func (c *CompositionRoot) CreateAcknowledgeAlarmCommandHandler() commands.AcknowledgeAlarmCommandHandler {
	return commands.NewAcknowledgeAlarmCommandHandler(c.alertUoWFactory())
}

func (c *CompositionRoot) alertUoWFactory() commands.AlertUoWFactory {
	return FuncAlertUoWFactory(func() commands.AlertUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrderDetailsQueryHandler() queries.ListOrderDetailsQueryHandler {
	return queries.NewListOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStatusLogQueryHandler() queries.ListStatusLogQueryHandler {
	return queries.NewListStatusLogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReconciliationQueryHandler() queries.GetReconciliationQueryHandler {
	return queries.NewGetReconciliationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAlarmsQueryHandler() queries.ListAlarmsQueryHandler {
	return queries.NewListAlarmsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAlertConfigQueryHandler() queries.GetAlertConfigQueryHandler {
	return queries.NewGetAlertConfigQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:             c.CreateCreateOrderFromPayloadCommandHandler(),
		RegisterInitialWeighing: c.CreateRegisterInitialWeighingCommandHandler(),
		RegisterFinalWeighing:   c.CreateRegisterFinalWeighingCommandHandler(),
		IngestTelemetry:         c.CreateIngestTelemetryCommandHandler(),
		UpdateAlertConfig:       c.CreateUpdateAlertConfigCommandHandler(),
		ResetAlertDedup:         c.CreateResetAlertDedupCommandHandler(),
		AcknowledgeAlarm:        c.CreateAcknowledgeAlarmCommandHandler(),

		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListOrderDetails:  c.CreateListOrderDetailsQueryHandler(),
		ListStatusLog:     c.CreateListStatusLogQueryHandler(),
		GetReconciliation: c.CreateGetReconciliationQueryHandler(),
		ListAlarms:        c.CreateListAlarmsQueryHandler(),
		GetAlertConfig:    c.CreateGetAlertConfigQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	resetHandler := c.CreateResetAlertDedupCommandHandler()
	return jobs.NewJobManager(
		&resetHandler,
		c.uowFactory.Create().OrderRepository(),
		jobs.Schedules{
			AlertReset:        c.cfg.AlertResetCron,
			StaleLoading:      c.cfg.StaleLoadingCron,
			StaleLoadingAfter: c.cfg.StaleLoadingAge(),
		},
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncTelemetryUoWFactory func() commands.TelemetryUoW

func (f FuncTelemetryUoWFactory) Create() commands.TelemetryUoW {
	return f()
}

type FuncAlertUoWFactory func() commands.AlertUoW

func (f FuncAlertUoWFactory) Create() commands.AlertUoW {
	return f()
}
