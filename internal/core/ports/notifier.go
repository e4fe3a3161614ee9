package ports

import (
	"context"
	"time"

	"loading/internal/core/domain/model/alarm"
	"loading/internal/core/domain/model/order"
)

// AlertMessage is the content sent to every recipient of a temperature alert.
type AlertMessage struct {
	AlarmID     int64
	OrderNumber string
	Temperature float64
	Threshold   float64
	At          time.Time
}

// Notifier delivers an alert to one recipient.
type Notifier interface {
	Notify(ctx context.Context, recipient string, msg AlertMessage) error
}

// EventPublisher fans out live events to subscribers such as dashboards. Publishing is
// best effort.
type EventPublisher interface {
	PublishReading(ctx context.Context, detail *order.Detail) error
	PublishAlarm(ctx context.Context, a *alarm.Alarm) error
}
