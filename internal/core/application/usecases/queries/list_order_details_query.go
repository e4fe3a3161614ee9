package queries

import (
	"errors"
	"strings"
	"time"

	"loading/internal/pkg/errs"
	"loading/internal/pkg/guard"
)

var ErrListOrderDetailsQueryIsNotConstructed = errors.New(
	"ListOrderDetailsQuery must be created via NewListOrderDetailsQuery constructor",
)

// ListOrderDetailsQuery retrieves the telemetry history of one order.
type ListOrderDetailsQuery struct {
	orderNumber string

	guard guard.ConstructorGuard
}

func NewListOrderDetailsQuery(orderNumber string) (ListOrderDetailsQuery, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return ListOrderDetailsQuery{}, errs.NewValueIsRequiredError("order_number")
	}
	return ListOrderDetailsQuery{orderNumber: orderNumber, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrListOrderDetailsQueryIsNotConstructed)
}

func (q ListOrderDetailsQuery) OrderNumber() string {
	return q.orderNumber
}

type OrderDetailResponse struct {
	ID              int64
	Timestamp       time.Time
	AccumulatedMass float64
	Density         float64
	Temperature     float64
	FlowRate        float64
}
