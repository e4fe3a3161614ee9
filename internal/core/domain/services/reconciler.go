package services

import (
	"fmt"
	"math"

	"loading/internal/core/domain/model/order"
	"loading/internal/pkg/errs"
)

// ErrNoTelemetryData is returned when an order has no OrderDetail rows, so averages
// are undefined.
var ErrNoTelemetryData = errs.NewBusinessRuleError("order has no telemetry data")

// Classification grades the absolute difference between net weight and metered mass.
type Classification string

const (
	Excellent      Classification = "excellent"
	Acceptable     Classification = "acceptable"
	RequiresReview Classification = "requires review"
)

const (
	// ExcellentLimit and AcceptableLimit are exclusive upper bounds in kilograms.
	ExcellentLimit  = 10.0
	AcceptableLimit = 50.0
)

// Classify grades a difference: |d| < 10 is excellent, |d| < 50 is acceptable and
// anything else, 50 included, requires review.
func Classify(difference float64) Classification {
	d := math.Abs(difference)
	switch {
	case d < ExcellentLimit:
		return Excellent
	case d < AcceptableLimit:
		return Acceptable
	default:
		return RequiresReview
	}
}

// Conciliation is the derived comparison report of a finalized order. It is computed
// on demand and never stored.
type Conciliation struct {
	OrderNumber        string
	InitialWeight      float64
	FinalWeight        float64
	NetWeight          float64
	AccumulatedMass    float64
	DifferenceWeight   float64
	AverageTemperature float64
	AverageDensity     float64
	AverageCaudal      float64
	Samples            int
	Classification     Classification
}

// Reconciler computes Conciliation reports.
//
// Example usage:
//
//	c, err := services.NewReconciler().Reconcile(o, details)
//	if errors.Is(err, services.ErrNoTelemetryData) {
//	    // nothing was metered for this order
//	}
type Reconciler struct{}

func NewReconciler() Reconciler {
	return Reconciler{}
}

// Reconcile requires a finalized order and at least one detail. The accumulated mass is
// taken from the detail with the latest timestamp; on equal timestamps the one with
// the highest id wins, which is the one stored last.
func (Reconciler) Reconcile(o *order.Order, details []*order.Detail) (Conciliation, error) {
	if err := o.Validate(); err != nil {
		return Conciliation{}, err
	}
	if o.Status() != order.Finalized {
		return Conciliation{}, errs.NewStateIsInvalidError("order", o.Status().String(), order.Finalized.String())
	}
	if o.InitialWeight() == nil || o.FinalWeight() == nil {
		return Conciliation{}, errs.NewValueIsRequiredError("weights")
	}
	if len(details) == 0 {
		return Conciliation{}, fmt.Errorf("%w: %s", ErrNoTelemetryData, o.Number())
	}

	var (
		latest                  *order.Detail
		sumTemp, sumDens, sumFl float64
	)
	for _, d := range details {
		if err := d.Validate(); err != nil {
			return Conciliation{}, err
		}
		if d.OrderNumber() != o.Number() {
			return Conciliation{}, errs.NewValueIsInvalidErrorWithCause(
				"detail",
				fmt.Errorf("detail %d belongs to order %s", d.ID(), d.OrderNumber()),
			)
		}

		r := d.Reading()
		sumTemp += r.Temperature()
		sumDens += r.Density()
		sumFl += r.FlowRate()

		if latest == nil || isLater(d, latest) {
			latest = d
		}
	}

	n := float64(len(details))
	net := o.FinalWeight().Sub(*o.InitialWeight())
	mass := latest.Reading().AccumulatedMass()
	diff := net - mass

	return Conciliation{
		OrderNumber:        o.Number(),
		InitialWeight:      o.InitialWeight().Kilograms(),
		FinalWeight:        o.FinalWeight().Kilograms(),
		NetWeight:          net,
		AccumulatedMass:    mass,
		DifferenceWeight:   diff,
		AverageTemperature: sumTemp / n,
		AverageDensity:     sumDens / n,
		AverageCaudal:      sumFl / n,
		Samples:            len(details),
		Classification:     Classify(diff),
	}, nil
}

func isLater(a, b *order.Detail) bool {
	ta, tb := a.Reading().Timestamp(), b.Reading().Timestamp()
	if ta.Equal(tb) {
		return a.ID() > b.ID()
	}
	return ta.After(tb)
}
