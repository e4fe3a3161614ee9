package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListStatusLogQueryHandler struct {
	db *gorm.DB
}

func NewListStatusLogQueryHandler(db *gorm.DB) ListStatusLogQueryHandler {
	return ListStatusLogQueryHandler{db: db}
}

// Handle returns entries in insertion order. The trail may lag behind the order when
// an audit write failed.
func (h ListStatusLogQueryHandler) Handle(
	ctx context.Context,
	query ListStatusLogQuery,
) ([]StatusLogEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := requireOrder(ctx, h.db, query.OrderNumber()); err != nil {
		return nil, err
	}

	entries := make([]StatusLogEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			from_status,
			to_status,
			actor,
			note,
			changed_at
		FROM order_status_logs
		WHERE order_number = ?
		ORDER BY id
	`, query.OrderNumber()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e StatusLogEntryResponse
		if err = rows.Scan(&e.ID, &e.From, &e.To, &e.Actor, &e.Note, &e.ChangedAt); err != nil {
			return nil, err
		}
		e.ChangedAt = e.ChangedAt.UTC()
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
