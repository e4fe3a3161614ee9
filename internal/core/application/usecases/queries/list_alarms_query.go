package queries

import (
	"errors"
	"time"

	"loading/internal/pkg/guard"
)

var ErrListAlarmsQueryIsNotConstructed = errors.New(
	"ListAlarmsQuery must be created via NewListAlarmsQuery constructor",
)

// ListAlarmsQuery retrieves temperature alarms, newest first.
//
// Example:
//
//	handler := NewListAlarmsQueryHandler(db)
//	pending, err := handler.Handle(ctx, NewListAlarmsQuery(true))
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d alarms wait for acknowledgement\n", len(pending))
type ListAlarmsQuery struct {
	onlyUnacknowledged bool

	guard guard.ConstructorGuard
}

// NewListAlarmsQuery lists every alarm, or only the ones nobody acknowledged yet.
func NewListAlarmsQuery(onlyUnacknowledged bool) ListAlarmsQuery {
	return ListAlarmsQuery{onlyUnacknowledged: onlyUnacknowledged, guard: guard.NewConstructorGuard()}
}

func (q ListAlarmsQuery) Validate() error {
	return q.guard.Validate(ErrListAlarmsQueryIsNotConstructed)
}

func (q ListAlarmsQuery) OnlyUnacknowledged() bool {
	return q.onlyUnacknowledged
}

type AlarmResponse struct {
	ID                   int64
	OrderNumber          string
	EventAt              time.Time
	CurrentTemperature   float64
	ThresholdTemperature float64
	Acknowledged         bool
	AcknowledgedBy       string
	Observations         string
	AcceptedAt           *time.Time
}
