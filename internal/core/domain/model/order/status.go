package order

import (
	"fmt"

	"loading/internal/pkg/errs"
)

// Status is the lifecycle state of a loading order.
//
//	Pending ──> TaraRegistered ──> Loading ──> Finalized
//	 (intake)   (initial weighing)  (first      (final weighing)
//	                                 telemetry)
//
// No transition moves backward or skips a state.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Pending is the state of a freshly created order awaiting its tare.
	Pending

	// TaraRegistered means the empty truck was weighed and an activation code issued.
	TaraRegistered

	// Loading means the flow meter has reported at least one reading.
	Loading

	// Finalized means the loaded truck was weighed. Terminal.
	Finalized
)

var statusNames = map[Status]string{
	Unknown:        "UNKNOWN",
	Pending:        "PENDING",
	TaraRegistered: "TARA_REGISTERED",
	Loading:        "LOADING",
	Finalized:      "FINALIZED",
}

// ParseStatus maps a persisted or transported name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s < Pending || s > Finalized {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Finalized
}

// RegisterTara transitions Pending -> TaraRegistered.
func (s Status) RegisterTara() (Status, error) {
	return s.advance(Pending, TaraRegistered)
}

// BeginLoading transitions TaraRegistered -> Loading.
func (s Status) BeginLoading() (Status, error) {
	return s.advance(TaraRegistered, Loading)
}

// Finalize transitions Loading -> Finalized.
func (s Status) Finalize() (Status, error) {
	return s.advance(Loading, Finalized)
}

func (s Status) advance(required, next Status) (Status, error) {
	if s != required {
		return Unknown, errs.NewStateIsInvalidError("order", s.String(), required.String())
	}
	return next, nil
}
