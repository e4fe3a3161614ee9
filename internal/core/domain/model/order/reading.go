package order

import (
	"errors"
	"math"
	"strings"
	"time"

	"loading/internal/pkg/errs"
	"loading/internal/pkg/guard"
)

var (
	ErrReadingIsNotConstructed = errors.New("Reading must be created via NewReading constructor")
	ErrDetailIsNotConstructed  = errors.New("Detail must be created via NewDetail or RestoreDetail")
)

// Reading is one flow-meter snapshot: cumulative mass (kg), density (kg/m³),
// product temperature (°C) and mass flow rate (kg/min).
type Reading struct { //nolint:recvcheck //using for validation
	timestamp       time.Time
	accumulatedMass float64
	density         float64
	temperature     float64
	flowRate        float64

	guard guard.ConstructorGuard
}

// NewReading validates a telemetry snapshot. All fields are mandatory; the caller is
// responsible for rejecting absent values before reaching the domain, here only
// zero timestamps and non-finite numbers are refused.
func NewReading(
	timestamp time.Time,
	accumulatedMass, density, temperature, flowRate float64,
) (Reading, error) {
	r := Reading{
		timestamp:       timestamp.UTC(),
		accumulatedMass: accumulatedMass,
		density:         density,
		temperature:     temperature,
		flowRate:        flowRate,
		guard:           guard.NewConstructorGuard(),
	}

	var problems []error
	if timestamp.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("timestamp"))
	}
	fields := []struct {
		name  string
		value float64
	}{
		{"accumulated_mass", accumulatedMass},
		{"density", density},
		{"temperature", temperature},
		{"flow_rate", flowRate},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			problems = append(problems, errs.NewValueIsInvalidError(f.name))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return Reading{}, err
	}
	return r, nil
}

func (r Reading) Validate() error {
	return r.guard.Validate(ErrReadingIsNotConstructed)
}

func (r Reading) Timestamp() time.Time { return r.timestamp }
func (r Reading) AccumulatedMass() float64 { return r.accumulatedMass }
func (r Reading) Density() float64 { return r.density }
func (r Reading) Temperature() float64 { return r.temperature }
func (r Reading) FlowRate() float64 { return r.flowRate }

// Detail is the immutable, persisted form of a Reading for one order. ID is zero
// until storage assigns it.
type Detail struct {
	id          int64
	orderNumber string
	reading     Reading

	guard guard.ConstructorGuard
}

// NewDetail binds a reading to its order.
func NewDetail(orderNumber string, reading Reading) (*Detail, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, errs.NewValueIsRequiredError("order_number")
	}
	if err := reading.Validate(); err != nil {
		return nil, err
	}
	return &Detail{orderNumber: orderNumber, reading: reading, guard: guard.NewConstructorGuard()}, nil
}

// RestoreDetail rebuilds a persisted detail.
func RestoreDetail(id int64, orderNumber string, reading Reading) (*Detail, error) {
	d, err := NewDetail(orderNumber, reading)
	if err != nil {
		return nil, err
	}
	d.id = id
	return d, nil
}

func (d *Detail) Validate() error {
	if d == nil {
		return ErrDetailIsNotConstructed
	}
	return d.guard.Validate(ErrDetailIsNotConstructed)
}

func (d *Detail) ID() int64 { return d.id }
func (d *Detail) OrderNumber() string { return d.orderNumber }
func (d *Detail) Reading() Reading { return d.reading }

// AssignID is called by the repository once the row is inserted.
func (d *Detail) AssignID(id int64) {
	d.id = id
}
