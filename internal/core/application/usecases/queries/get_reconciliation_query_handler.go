package queries

import (
	"context"
	"math"
	"time"

	"loading/internal/core/domain/model/kernel"
	"loading/internal/core/domain/model/order"
	"loading/internal/core/domain/services"
	"loading/internal/pkg/errs"
	"loading/internal/pkg/metrics"

	"gorm.io/gorm"
)

// GetReconciliationQueryHandler loads the weighbridge figures and the telemetry
// history of an order and hands them to services.Reconciler. Nothing is stored.
type GetReconciliationQueryHandler struct {
	db         *gorm.DB
	reconciler services.Reconciler
}

func NewGetReconciliationQueryHandler(db *gorm.DB) GetReconciliationQueryHandler {
	return GetReconciliationQueryHandler{db: db, reconciler: services.NewReconciler()}
}

// Handle yields errs.ObjectNotFoundError for an unknown order, errs.StateIsInvalidError
// unless the order is Finalized and services.ErrNoTelemetryData without readings.
func (h GetReconciliationQueryHandler) Handle(
	ctx context.Context,
	query GetReconciliationQuery,
) (services.Conciliation, error) {
	if err := query.Validate(); err != nil {
		return services.Conciliation{}, err
	}

	o, err := h.loadOrder(ctx, query.OrderNumber())
	if err != nil {
		return services.Conciliation{}, err
	}

	details, err := h.loadDetails(ctx, query.OrderNumber())
	if err != nil {
		return services.Conciliation{}, err
	}

	c, err := h.reconciler.Reconcile(o, details)
	if err != nil {
		return services.Conciliation{}, err
	}

	metrics.ObserveReconciliation(math.Abs(c.DifferenceWeight))
	return c, nil
}

func (h GetReconciliationQueryHandler) loadOrder(ctx context.Context, number string) (*order.Order, error) {
	var row struct {
		Number        string
		Preset        float64
		Status        int
		InitialWeight *float64
		FinalWeight   *float64
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT number, preset, status, initial_weight, final_weight
		FROM orders
		WHERE number = ?
	`, number).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", number)
	}

	s := order.Snapshot{
		Number: row.Number,
		Preset: row.Preset,
		Status: order.Status(row.Status),
	}
	if row.InitialWeight != nil {
		w, err := kernel.NewWeight(*row.InitialWeight)
		if err != nil {
			return nil, err
		}
		s.InitialWeight = &w
	}
	if row.FinalWeight != nil {
		w, err := kernel.NewWeight(*row.FinalWeight)
		if err != nil {
			return nil, err
		}
		s.FinalWeight = &w
	}

	return order.RestoreOrder(s)
}

func (h GetReconciliationQueryHandler) loadDetails(ctx context.Context, number string) ([]*order.Detail, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, measured_at, accumulated_mass, density, temperature, flow_rate
		FROM order_details
		WHERE order_number = ?
		ORDER BY measured_at, id
	`, number).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]*order.Detail, 0)
	for rows.Next() {
		var (
			id                            int64
			ts                            time.Time
			mass, density, temp, flowRate float64
		)
		if err = rows.Scan(&id, &ts, &mass, &density, &temp, &flowRate); err != nil {
			return nil, err
		}

		reading, readErr := order.NewReading(ts, mass, density, temp, flowRate)
		if readErr != nil {
			return nil, readErr
		}
		d, detailErr := order.RestoreDetail(id, number, reading)
		if detailErr != nil {
			return nil, detailErr
		}
		details = append(details, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}
