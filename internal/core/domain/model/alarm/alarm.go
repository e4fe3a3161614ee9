package alarm

import (
	"errors"
	"strings"
	"time"

	"loading/internal/pkg/errs"
)

var ErrAlarmIsNotConstructed = errors.New("Alarm must be created via NewAlarm or RestoreAlarm")

// Alarm records one temperature threshold breach. Threshold is the value that was in
// effect when the breach happened, not the current configuration.
type Alarm struct {
	id                   int64
	orderNumber          string
	eventAt              time.Time
	currentTemperature   float64
	thresholdTemperature float64

	acknowledged   bool
	acknowledgedBy string
	observations   string
	acceptedAt     *time.Time

	isConstructed bool
}

// NewAlarm creates an unacknowledged alarm.
func NewAlarm(orderNumber string, eventAt time.Time, current, threshold float64) (*Alarm, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("order_number")
	}
	if eventAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("event_date_time")
	}
	return &Alarm{
		orderNumber:          orderNumber,
		eventAt:              eventAt.UTC(),
		currentTemperature:   current,
		thresholdTemperature: threshold,
		isConstructed:        true,
	}, nil
}

// AlarmSnapshot carries the persisted fields of an Alarm.
type AlarmSnapshot struct {
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

func RestoreAlarm(s AlarmSnapshot) (*Alarm, error) {
	a, err := NewAlarm(s.OrderNumber, s.EventAt, s.CurrentTemperature, s.ThresholdTemperature)
	if err != nil {
		return nil, err
	}
	a.id = s.ID
	a.acknowledged = s.Acknowledged
	a.acknowledgedBy = s.AcknowledgedBy
	a.observations = s.Observations
	a.acceptedAt = s.AcceptedAt
	return a, nil
}

func (a *Alarm) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAlarmIsNotConstructed
	}
	return nil
}

func (a *Alarm) ID() int64 { return a.id }
func (a *Alarm) OrderNumber() string { return a.orderNumber }
func (a *Alarm) EventAt() time.Time { return a.eventAt }
func (a *Alarm) CurrentTemperature() float64 { return a.currentTemperature }
func (a *Alarm) ThresholdTemperature() float64 { return a.thresholdTemperature }
func (a *Alarm) Acknowledged() bool { return a.acknowledged }
func (a *Alarm) AcknowledgedBy() string { return a.acknowledgedBy }
func (a *Alarm) Observations() string { return a.observations }
func (a *Alarm) AcceptedAt() *time.Time { return a.acceptedAt }
func (a *Alarm) AssignID(id int64) { a.id = id }

// Acknowledge marks the alarm as seen by an operator. Acknowledging again overwrites
// the previous user and observations.
func (a *Alarm) Acknowledge(user, observations string, at time.Time) error {
	user = strings.TrimSpace(user)
	if user == "" {
		return errs.NewValueIsRequiredError("user")
	}
	at = at.UTC()
	a.acknowledged = true
	a.acknowledgedBy = user
	a.observations = strings.TrimSpace(observations)
	a.acceptedAt = &at
	return nil
}
