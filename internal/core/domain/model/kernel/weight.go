package kernel

import (
	"fmt"
	"math"

	"loading/internal/pkg/errs"
	"loading/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when a zero-value Weight is used.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError("weight must be created via NewWeight")

// Weight is a weighbridge reading in kilograms. Tare and gross readings are both
// represented by Weight; a reading of exactly zero is legal.
type Weight struct { //nolint:recvcheck //using for validation
	kilograms float64
	guard     guard.ConstructorGuard
}

// NewWeight validates a scale reading. Negative, NaN and infinite values are rejected
// with a ValueIsOutOfRangeError.
//
// Example:
//
//	tare, err := kernel.NewWeight(14250)
//	if err != nil {
//	    return err
//	}
func NewWeight(kilograms float64) (Weight, error) {
	if math.IsNaN(kilograms) || math.IsInf(kilograms, 0) || kilograms < 0 {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", kilograms, 0, math.MaxFloat64)
	}
	return Weight{kilograms: kilograms, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the Weight was built by NewWeight.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Kilograms returns the raw reading.
func (w Weight) Kilograms() float64 {
	return w.kilograms
}

// Less reports whether w is strictly lighter than other.
func (w Weight) Less(other Weight) bool {
	return w.kilograms < other.kilograms
}

// Sub returns w - other in kilograms. The result may be negative.
func (w Weight) Sub(other Weight) float64 {
	return w.kilograms - other.kilograms
}

func (w Weight) String() string {
	return fmt.Sprintf("%.2f kg", w.kilograms)
}
