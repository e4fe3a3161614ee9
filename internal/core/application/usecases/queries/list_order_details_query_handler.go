package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrderDetailsQueryHandler returns readings ordered by timestamp, then id. An
// unknown order yields errs.ObjectNotFoundError; a known order without readings yields
// an empty list.
type ListOrderDetailsQueryHandler struct {
	db *gorm.DB
}

func NewListOrderDetailsQueryHandler(db *gorm.DB) ListOrderDetailsQueryHandler {
	return ListOrderDetailsQueryHandler{db: db}
}

func (h ListOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query ListOrderDetailsQuery,
) ([]OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := requireOrder(ctx, h.db, query.OrderNumber()); err != nil {
		return nil, err
	}

	details := make([]OrderDetailResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			measured_at,
			accumulated_mass,
			density,
			temperature,
			flow_rate
		FROM order_details
		WHERE order_number = ?
		ORDER BY measured_at, id
	`, query.OrderNumber()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d OrderDetailResponse
		if err = rows.Scan(
			&d.ID,
			&d.Timestamp,
			&d.AccumulatedMass,
			&d.Density,
			&d.Temperature,
			&d.FlowRate,
		); err != nil {
			return nil, err
		}
		d.Timestamp = d.Timestamp.UTC()
		details = append(details, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}
