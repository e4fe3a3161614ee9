// Package ports defines the contracts between the loading core and its
// infrastructure: repositories, the unit of work and outbound collaborators.
package ports

import (
	"context"
	"time"

	"loading/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. An order with the same number yields
	// errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order if its stored version still equals the version it
	// was loaded with, then bumps the version. A mismatch yields
	// errs.VersionIsInvalidError and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by number. A missing order yields
	// errs.ObjectNotFoundError.
	Get(ctx context.Context, number string) (*order.Order, error)

	// GetStaleLoading returns orders in Loading whose last reading, or loading start
	// when there is none, is older than before.
	GetStaleLoading(ctx context.Context, before time.Time) ([]*order.Order, error)
}

// OrderDetailRepository stores the telemetry history of orders.
type OrderDetailRepository interface {
	// Add inserts the detail and assigns its id.
	Add(ctx context.Context, detail *order.Detail) error

	// ListByOrder returns every detail of an order ordered by timestamp, then id.
	ListByOrder(ctx context.Context, orderNumber string) ([]*order.Detail, error)
}

// StatusLogRepository is the append-only audit trail of order transitions.
type StatusLogRepository interface {
	Append(ctx context.Context, transitions ...order.Transition) error
}
