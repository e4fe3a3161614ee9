package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListAlarmsQueryHandler struct {
	db *gorm.DB
}

func NewListAlarmsQueryHandler(db *gorm.DB) ListAlarmsQueryHandler {
	return ListAlarmsQueryHandler{db: db}
}

// Handle orders alarms by event time descending; alarms raised at the same instant
// are ordered by id descending.
func (h ListAlarmsQueryHandler) Handle(ctx context.Context, query ListAlarmsQuery) ([]AlarmResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_number,
			event_date_time,
			current_temperature,
			threshold_temperature,
			acknowledged,
			acknowledged_by,
			observations,
			accepted_date_time
		FROM alarms`
	args := make([]any, 0, 1)
	if query.OnlyUnacknowledged() {
		sql += `
		WHERE acknowledged = ?`
		args = append(args, false)
	}
	sql += `
		ORDER BY event_date_time DESC, id DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alarms := make([]AlarmResponse, 0)
	for rows.Next() {
		var a AlarmResponse
		if err = rows.Scan(
			&a.ID,
			&a.OrderNumber,
			&a.EventAt,
			&a.CurrentTemperature,
			&a.ThresholdTemperature,
			&a.Acknowledged,
			&a.AcknowledgedBy,
			&a.Observations,
			&a.AcceptedAt,
		); err != nil {
			return nil, err
		}
		a.EventAt = a.EventAt.UTC()
		alarms = append(alarms, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return alarms, nil
}
