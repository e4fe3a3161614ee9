package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Repositories returned
// after Begin share its transaction; before Begin they use the plain connection.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	OrderDetailRepository() OrderDetailRepository
	StatusLogRepository() StatusLogRepository
	MasterRepository() MasterRepository
	AlarmRepository() AlarmRepository
	AlertConfigRepository() AlertConfigRepository
}
