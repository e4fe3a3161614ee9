package alarmrepo_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"loading/internal/adapters/out/postgres/alarmrepo"
	"loading/internal/core/domain/model/alarm"
	"loading/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type AlarmRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	alarms    *alarmrepo.GormAlarmRepository
	configs   *alarmrepo.GormAlertConfigRepository
}

func (suite *AlarmRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&alarmrepo.AlarmDTO{}, &alarmrepo.AlertConfigDTO{}))
}

func (suite *AlarmRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE alarms, temperature_alert_configs").Error)

	suite.alarms = alarmrepo.NewGormAlarmRepository(suite.db)
	suite.configs = alarmrepo.NewGormAlertConfigRepository(suite.db)
}

func (suite *AlarmRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AlarmRepositoryIntegrationTestSuite) TestAlarm_AddAcknowledgeGet() {
	ctx := context.Background()
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	a, err := alarm.NewAlarm("OC-1", at, 7.5, 5)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.alarms.Add(ctx, a))
	suite.Positive(a.ID())

	suite.Require().NoError(a.Acknowledge("operator", "valve closed", at.Add(time.Minute)))
	suite.Require().NoError(suite.alarms.Update(ctx, a))

	got, err := suite.alarms.Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal("OC-1", got.OrderNumber())
	suite.True(at.Equal(got.EventAt()))
	suite.InDelta(7.5, got.CurrentTemperature(), 1e-9)
	suite.InDelta(5.0, got.ThresholdTemperature(), 1e-9)
	suite.True(got.Acknowledged())
	suite.Equal("operator", got.AcknowledgedBy())
	suite.Equal("valve closed", got.Observations())
	suite.Require().NotNil(got.AcceptedAt())
}

func (suite *AlarmRepositoryIntegrationTestSuite) TestAlarm_NotFound() {
	ctx := context.Background()

	_, err := suite.alarms.Get(ctx, 42)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	ghost, err := alarm.RestoreAlarm(alarm.AlarmSnapshot{ID: 42, OrderNumber: "OC-1", EventAt: time.Now()})
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.alarms.Update(ctx, ghost), errs.ErrObjectNotFound)
}

func (suite *AlarmRepositoryIntegrationTestSuite) TestConfig_SeededOnFirstAccess() {
	cfg, err := suite.configs.Get(context.Background())

	suite.Require().NoError(err)
	suite.InDelta(alarm.DefaultThreshold, cfg.Threshold(), 1e-9)
	suite.Empty(cfg.Recipients())
	suite.False(cfg.EmailAlreadySent())
}

func (suite *AlarmRepositoryIntegrationTestSuite) TestConfig_SaveKeepsFlag() {
	ctx := context.Background()
	claimed, err := suite.configs.ClaimNotification(ctx)
	suite.Require().NoError(err)
	suite.Require().True(claimed)

	next, err := alarm.NewAlertConfig(9, []string{"ops@plant.test"}, false)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.configs.Save(ctx, next))

	cfg, err := suite.configs.Get(ctx)
	suite.Require().NoError(err)
	suite.InDelta(9.0, cfg.Threshold(), 1e-9)
	suite.Equal([]string{"ops@plant.test"}, cfg.Recipients())
	suite.True(cfg.EmailAlreadySent())
}

func (suite *AlarmRepositoryIntegrationTestSuite) TestConfig_ClaimAndReset() {
	ctx := context.Background()

	claimed, err := suite.configs.ClaimNotification(ctx)
	suite.Require().NoError(err)
	suite.True(claimed)

	claimed, err = suite.configs.ClaimNotification(ctx)
	suite.Require().NoError(err)
	suite.False(claimed)

	suite.Require().NoError(suite.configs.ResetNotification(ctx))
	suite.Require().NoError(suite.configs.ResetNotification(ctx))

	claimed, err = suite.configs.ClaimNotification(ctx)
	suite.Require().NoError(err)
	suite.True(claimed)
}

func (suite *AlarmRepositoryIntegrationTestSuite) TestConfig_ConcurrentClaimsHaveOneWinner() {
	ctx := context.Background()
	_, err := suite.configs.Get(ctx)
	suite.Require().NoError(err)

	const callers = 8
	var (
		wg      sync.WaitGroup
		winners atomic.Int32
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx := suite.db.Begin()
			claimed, claimErr := alarmrepo.NewGormAlertConfigRepository(tx).ClaimNotification(ctx)
			if claimErr != nil {
				tx.Rollback()
				return
			}
			if tx.Commit().Error == nil && claimed {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	suite.Equal(int32(1), winners.Load())
}

func TestAlarmRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(AlarmRepositoryIntegrationTestSuite))
}
