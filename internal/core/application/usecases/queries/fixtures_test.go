package queries_test

import (
	"context"
	"time"

	"loading/internal/adapters/out/postgres"
	"loading/internal/adapters/out/postgres/orderrepo"
	"loading/internal/core/domain/model/kernel"
	"loading/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var base = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

// QueriesTestSuite runs every read model against an embedded sqlite database that
// is recreated for each test.
type QueriesTestSuite struct {
	suite.Suite
	db *gorm.DB
}

func (suite *QueriesTestSuite) SetupTest() {
	db, err := postgres.Open(postgres.Options{
		Driver:     postgres.DriverSQLite,
		SQLitePath: ":memory:",
		LogLevel:   logger.Silent,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(postgres.Migrate(db))
	suite.db = db
}

func (suite *QueriesTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())
}

func (suite *QueriesTestSuite) weight(kg float64) kernel.Weight {
	w, err := kernel.NewWeight(kg)
	suite.Require().NoError(err)
	return w
}

func (suite *QueriesTestSuite) reading(offset time.Duration, mass, density, temp, flow float64) order.Reading {
	r, err := order.NewReading(base.Add(offset), mass, density, temp, flow)
	suite.Require().NoError(err)
	return r
}

// addOrder stores a pending order.
func (suite *QueriesTestSuite) addOrder(number string, refs order.References) *order.Order {
	o, err := order.NewOrder(number, "ERP-"+number, base, 28000, refs, base)
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db).Add(context.Background(), o))
	return o
}

// finalizedOrder walks an order through the whole lifecycle with the given weights.
func (suite *QueriesTestSuite) finalizedOrder(number string, tare, gross float64) *order.Order {
	ctx := context.Background()
	repo := orderrepo.NewGormOrderRepository(suite.db)

	o := suite.addOrder(number, order.References{})
	suite.Require().NoError(o.RegisterInitialWeighing(suite.weight(tare), kernel.NewRandomActivationCode(), base))
	suite.Require().NoError(o.BeginLoading(base.Add(time.Minute)))
	suite.Require().NoError(o.RegisterFinalWeighing(suite.weight(gross), base.Add(time.Hour)))
	suite.Require().NoError(repo.Update(ctx, o))
	return o
}

func (suite *QueriesTestSuite) addDetails(number string, readings ...order.Reading) {
	repo := orderrepo.NewGormOrderDetailRepository(suite.db)
	for _, r := range readings {
		d, err := order.NewDetail(number, r)
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Add(context.Background(), d))
	}
}
