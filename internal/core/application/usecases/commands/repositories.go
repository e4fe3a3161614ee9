// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every handler validates its command, runs one short transaction per aggregate
// change and performs best-effort side effects (status log, notifications, events)
// only after the commit.
package commands

import (
	"context"

	"loading/internal/core/ports"
)

// Unit of Work interfaces narrow ports.UnitOfWork to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OrderDetailRepoFactory interface {
		OrderDetailRepository() ports.OrderDetailRepository
	}

	MasterRepoFactory interface {
		MasterRepository() ports.MasterRepository
	}

	AlarmRepoFactory interface {
		AlarmRepository() ports.AlarmRepository
	}

	AlertConfigRepoFactory interface {
		AlertConfigRepository() ports.AlertConfigRepository
	}

	// OrderUoW is used by the weighbridge handlers.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// IntakeUoW resolves masters outside a transaction and inserts the order inside
	// one.
	IntakeUoW interface {
		TxManager
		OrderRepoFactory
		MasterRepoFactory
	}

	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// TelemetryUoW stores a reading and the refreshed order in one transaction.
	TelemetryUoW interface {
		TxManager
		OrderRepoFactory
		OrderDetailRepoFactory
	}

	TelemetryUoWFactory interface {
		Create() TelemetryUoW
	}

	// AlertUoW covers the alert configuration and alarms.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   claimed, err := uow.AlertConfigRepository().ClaimNotification(ctx)
	//   err = uow.AlarmRepository().Add(ctx, a)
	//
	//   err = uow.Commit(ctx)
	AlertUoW interface {
		TxManager
		AlarmRepoFactory
		AlertConfigRepoFactory
	}

	AlertUoWFactory interface {
		Create() AlertUoW
	}
)
