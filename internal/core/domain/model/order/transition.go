package order

import "time"

// Actor identifies the subsystem that triggered a transition.
type Actor string

const (
	ActorIntake    Actor = "INTAKE"
	ActorTMS       Actor = "TMS"
	ActorTelemetry Actor = "TELEMETRY"
)

// Transition is the audit record of one accepted state change. From is nil for the
// creation entry.
type Transition struct {
	OrderNumber string
	From        *Status
	To          Status
	Actor       Actor
	Note        string
	At          time.Time
}
