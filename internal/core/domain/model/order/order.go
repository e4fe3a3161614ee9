package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"loading/internal/core/domain/model/kernel"
	"loading/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrInvalidWeight is returned when the gross weight is lighter than the tare.
	ErrInvalidWeight = errs.NewBusinessRuleError("final weight is less than initial weight")
)

// References points at the master entities an order was placed for. Any of them may be
// nil for orders that arrived through the charging-system intake without that block.
type References struct {
	Client  *kernel.UUID
	Driver  *kernel.UUID
	Truck   *kernel.UUID
	Product *kernel.UUID
}

// Order is the aggregate root of a bulk-product loading. It is keyed by the order
// number supplied by the ERP and is never deleted by this service.
//
// Order follows these invariants:
//   - The order number is non-blank and immutable
//   - Status only moves forward (see Status)
//   - The tare is set only while Pending, together with the activation code
//   - The gross is set only while Loading and is never below the tare
//   - The readout holds the latest reading by timestamp
//
// Every accepted transition is appended to an in-memory list that handlers drain into
// the status log after the change is committed.
type Order struct {
	number        string
	externalCode  string
	scheduledDate time.Time
	preset        float64
	references    References

	status         Status
	initialWeight  *kernel.Weight
	finalWeight    *kernel.Weight
	activationCode *kernel.ActivationCode

	initialWeighingAt *time.Time
	startLoadingAt    *time.Time
	endWeighingAt     *time.Time

	readout *Reading

	// version is the optimistic concurrency token loaded from storage.
	version int

	transitions   []Transition
	isConstructed bool
}

// NewOrder creates a Pending order and records its creation transition.
//
// Example:
//
//	o, err := order.NewOrder("OC-1001", "ERP-77", time.Now(), 28000, refs, time.Now())
//	if err != nil {
//	    return err
//	}
func NewOrder(
	number, externalCode string,
	scheduledDate time.Time,
	preset float64,
	refs References,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		externalCode:  strings.TrimSpace(externalCode),
		scheduledDate: scheduledDate.UTC(),
		references:    refs,
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setPreset(preset),
		o.setReferences(refs),
	); err != nil {
		return nil, err
	}

	o.record(nil, Pending, ActorIntake, "order created", createdAt)
	return o, nil
}

// Snapshot carries every persisted field of an Order. It is used by repositories only.
type Snapshot struct {
	Number            string
	ExternalCode      string
	ScheduledDate     time.Time
	Preset            float64
	References        References
	Status            Status
	InitialWeight     *kernel.Weight
	FinalWeight       *kernel.Weight
	ActivationCode    *kernel.ActivationCode
	InitialWeighingAt *time.Time
	StartLoadingAt    *time.Time
	EndWeighingAt     *time.Time
	Readout           *Reading
	Version           int
}

// RestoreOrder rebuilds an Order from storage, re-checking the invariants that tie
// the status to the weighbridge fields.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		externalCode:      s.ExternalCode,
		scheduledDate:     s.ScheduledDate,
		status:            s.Status,
		initialWeight:     s.InitialWeight,
		finalWeight:       s.FinalWeight,
		activationCode:    s.ActivationCode,
		initialWeighingAt: s.InitialWeighingAt,
		startLoadingAt:    s.StartLoadingAt,
		endWeighingAt:     s.EndWeighingAt,
		readout:           s.Readout,
		version:           s.Version,
		isConstructed:     true,
	}

	if err := errors.Join(
		o.setNumber(s.Number),
		o.setPreset(s.Preset),
		o.setReferences(s.References),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if s.Status != Pending && s.InitialWeight == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"initial weight",
			fmt.Errorf("%s order must have an initial weight", s.Status),
		)
	}
	if s.Status == Finalized && s.FinalWeight == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"final weight",
			fmt.Errorf("%s order must have a final weight", s.Status),
		)
	}

	return o, nil
}

// Validate ensures the Order was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) Number() string { return o.number }
func (o *Order) ExternalCode() string { return o.externalCode }
func (o *Order) ScheduledDate() time.Time { return o.scheduledDate }
func (o *Order) Preset() float64 { return o.preset }
func (o *Order) References() References { return o.references }
func (o *Order) Status() Status { return o.status }
func (o *Order) InitialWeight() *kernel.Weight { return o.initialWeight }
func (o *Order) FinalWeight() *kernel.Weight { return o.finalWeight }
func (o *Order) ActivationCode() *kernel.ActivationCode { return o.activationCode }
func (o *Order) InitialWeighingAt() *time.Time { return o.initialWeighingAt }
func (o *Order) StartLoadingAt() *time.Time { return o.startLoadingAt }
func (o *Order) EndWeighingAt() *time.Time { return o.endWeighingAt }
func (o *Order) Readout() *Reading { return o.readout }
func (o *Order) Version() int { return o.version }

// Snapshot exports every persisted field. Repositories use it to map the order to
// storage; Version is the version the order was loaded with.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		Number:            o.number,
		ExternalCode:      o.externalCode,
		ScheduledDate:     o.scheduledDate,
		Preset:            o.preset,
		References:        o.references,
		Status:            o.status,
		InitialWeight:     o.initialWeight,
		FinalWeight:       o.finalWeight,
		ActivationCode:    o.activationCode,
		InitialWeighingAt: o.initialWeighingAt,
		StartLoadingAt:    o.startLoadingAt,
		EndWeighingAt:     o.endWeighingAt,
		Readout:           o.readout,
		Version:           o.version,
	}
}

// SetVersion is called by repositories after a successful write.
func (o *Order) SetVersion(version int) {
	o.version = version
}

// Transitions returns the transitions accepted since the order was built or restored.
func (o *Order) Transitions() []Transition {
	out := make([]Transition, len(o.transitions))
	copy(out, o.transitions)
	return out
}

// RegisterInitialWeighing records the tare, issues the activation code and moves the
// order to TaraRegistered. The order is left unchanged on error.
func (o *Order) RegisterInitialWeighing(weight kernel.Weight, code kernel.ActivationCode, at time.Time) error {
	if err := errors.Join(weight.Validate(), code.Validate()); err != nil {
		return err
	}

	next, err := o.status.RegisterTara()
	if err != nil {
		return err
	}

	from := o.status
	at = at.UTC()
	o.initialWeight = &weight
	o.activationCode = &code
	o.initialWeighingAt = &at
	o.status = next
	o.record(&from, next, ActorTMS, fmt.Sprintf("initial weight registered: %s", weight), at)
	return nil
}

// BeginLoading moves a TaraRegistered order to Loading. It is driven by the first
// telemetry reading.
func (o *Order) BeginLoading(at time.Time) error {
	next, err := o.status.BeginLoading()
	if err != nil {
		return err
	}

	from := o.status
	at = at.UTC()
	o.startLoadingAt = &at
	o.status = next
	o.record(&from, next, ActorTelemetry, "loading started by first telemetry reading", at)
	return nil
}

// RegisterFinalWeighing records the gross weight and finalizes the order. A gross
// lighter than the tare fails with ErrInvalidWeight and leaves the order unchanged.
func (o *Order) RegisterFinalWeighing(weight kernel.Weight, at time.Time) error {
	if err := weight.Validate(); err != nil {
		return err
	}

	next, err := o.status.Finalize()
	if err != nil {
		return err
	}
	if o.initialWeight == nil {
		return errs.NewValueIsRequiredError("initial weight")
	}
	if weight.Less(*o.initialWeight) {
		return fmt.Errorf("%w: %s < %s", ErrInvalidWeight, weight, *o.initialWeight)
	}

	from := o.status
	at = at.UTC()
	o.finalWeight = &weight
	o.endWeighingAt = &at
	o.status = next
	o.record(&from, next, ActorTMS, fmt.Sprintf("final weight registered: %s", weight), at)
	return nil
}

// ApplyReading refreshes the live readout. Readings older than the current readout
// are stored as history by the caller but do not move the readout backwards; the
// return value reports whether the readout changed.
func (o *Order) ApplyReading(r Reading) (bool, error) {
	if err := r.Validate(); err != nil {
		return false, err
	}
	if o.readout != nil && r.Timestamp().Before(o.readout.Timestamp()) {
		return false, nil
	}
	o.readout = &r
	return true, nil
}

func (o *Order) record(from *Status, to Status, actor Actor, note string, at time.Time) {
	o.transitions = append(o.transitions, Transition{
		OrderNumber: o.number,
		From:        from,
		To:          to,
		Actor:       actor,
		Note:        note,
		At:          at.UTC(),
	})
}

func (o *Order) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("order_number")
	}
	o.number = number
	return nil
}

func (o *Order) setPreset(preset float64) error {
	if preset < 0 {
		return errs.NewValueIsOutOfRangeError("preset", preset, 0, "+Inf")
	}
	o.preset = preset
	return nil
}

func (o *Order) setReferences(refs References) error {
	for _, ref := range []struct {
		name string
		id   *kernel.UUID
	}{
		{"client", refs.Client},
		{"driver", refs.Driver},
		{"truck", refs.Truck},
		{"product", refs.Product},
	} {
		if ref.id == nil {
			continue
		}
		if err := ref.id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(ref.name, err)
		}
	}
	o.references = refs
	return nil
}
