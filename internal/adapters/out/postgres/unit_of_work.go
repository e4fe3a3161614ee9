// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Repositories bound to the open transaction, or to the plain connection before Begin
//   - Proper isolation between concurrent operations
//   - Optimistic concurrency on orders through a version column
//
// Usage Patterns:
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Work Outside a Transaction:
//
// Repositories taken before Begin run on the plain connection. Master find-or-create
// and the status log use this so that a failed insert never poisons the order
// transaction.
//
//	masters := factory.Create().MasterRepository()
//	driver, found, err := masters.FindDriverByDocumentNumber(ctx, "30111222")
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Keep transactions short; notifications run after Commit
package postgres

import (
	"context"

	"loading/internal/adapters/out/postgres/alarmrepo"
	"loading/internal/adapters/out/postgres/masterrepo"
	"loading/internal/adapters/out/postgres/orderrepo"
	"loading/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
//
// Example:
//
//	db, err := Open(cfg)
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction for a business operation.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Handlers defer it unconditionally, so calling it after Commit only returns
// gorm.ErrInvalidTransaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderDetailRepository() ports.OrderDetailRepository {
	return orderrepo.NewGormOrderDetailRepository(uow.conn())
}

func (uow *GormUnitOfWork) StatusLogRepository() ports.StatusLogRepository {
	return orderrepo.NewGormStatusLogRepository(uow.conn())
}

func (uow *GormUnitOfWork) MasterRepository() ports.MasterRepository {
	return masterrepo.NewGormMasterRepository(uow.conn())
}

func (uow *GormUnitOfWork) AlarmRepository() ports.AlarmRepository {
	return alarmrepo.NewGormAlarmRepository(uow.conn())
}

func (uow *GormUnitOfWork) AlertConfigRepository() ports.AlertConfigRepository {
	return alarmrepo.NewGormAlertConfigRepository(uow.conn())
}

// conn returns the open transaction, or the main connection when none is active.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
