package queries

import (
	"context"
	"encoding/json"
	"fmt"

	"loading/internal/core/domain/model/alarm"

	"gorm.io/gorm"
)

// GetAlertConfigQueryHandler reads the configuration row. Before the row exists it
// reports the defaults the row will be created with, without writing anything.
type GetAlertConfigQueryHandler struct {
	db *gorm.DB
}

func NewGetAlertConfigQueryHandler(db *gorm.DB) GetAlertConfigQueryHandler {
	return GetAlertConfigQueryHandler{db: db}
}

func (h GetAlertConfigQueryHandler) Handle(
	ctx context.Context,
	query GetAlertConfigQuery,
) (GetAlertConfigQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAlertConfigQueryResponse{}, err
	}

	var row struct {
		Threshold        float64
		Recipients       *string
		EmailAlreadySent bool
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT threshold, recipients, email_already_sent
		FROM temperature_alert_configs
		WHERE id = ?
	`, alarm.ConfigID).Scan(&row)
	if result.Error != nil {
		return GetAlertConfigQueryResponse{}, result.Error
	}

	if result.RowsAffected == 0 {
		def := alarm.DefaultAlertConfig()
		return GetAlertConfigQueryResponse{
			Threshold:        def.Threshold(),
			Recipients:       def.Recipients(),
			EmailAlreadySent: def.EmailAlreadySent(),
		}, nil
	}

	recipients := make([]string, 0)
	if row.Recipients != nil && *row.Recipients != "" && *row.Recipients != "null" {
		if err := json.Unmarshal([]byte(*row.Recipients), &recipients); err != nil {
			return GetAlertConfigQueryResponse{}, fmt.Errorf("decode alert recipients: %w", err)
		}
	}

	return GetAlertConfigQueryResponse{
		Threshold:        row.Threshold,
		Recipients:       recipients,
		EmailAlreadySent: row.EmailAlreadySent,
	}, nil
}
