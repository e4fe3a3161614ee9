package ports

import (
	"context"

	"loading/internal/core/domain/model/alarm"
)

// AlarmRepository persists temperature alarms.
type AlarmRepository interface {
	// Add inserts the alarm and assigns its id.
	Add(ctx context.Context, a *alarm.Alarm) error

	// Update persists the acknowledgement fields.
	Update(ctx context.Context, a *alarm.Alarm) error

	// Get yields errs.ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id int64) (*alarm.Alarm, error)
}

// AlertConfigRepository manages the single temperature alert configuration row.
type AlertConfigRepository interface {
	// Get returns the configuration, creating the default row on first access.
	Get(ctx context.Context) (alarm.AlertConfig, error)

	// Save stores threshold and recipients. The dedup flag is left untouched.
	Save(ctx context.Context, config alarm.AlertConfig) error

	// ClaimNotification atomically flips the dedup flag from false to true and
	// reports whether this caller did the flip.
	ClaimNotification(ctx context.Context) (bool, error)

	// ResetNotification clears the dedup flag.
	ResetNotification(ctx context.Context) error
}
