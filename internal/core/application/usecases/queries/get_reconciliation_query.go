package queries

import (
	"errors"
	"strings"

	"loading/internal/pkg/errs"
	"loading/internal/pkg/guard"
)

var ErrGetReconciliationQueryIsNotConstructed = errors.New(
	"GetReconciliationQuery must be created via NewGetReconciliationQuery constructor",
)

// GetReconciliationQuery asks for the conciliation report of a finalized order.
//
// Example:
//
//	query, _ := NewGetReconciliationQuery("OC-1001")
//	report, err := NewGetReconciliationQueryHandler(db).Handle(ctx, query)
//	switch {
//	case errors.Is(err, services.ErrNoTelemetryData):
//	    // the order was weighed but never metered
//	case err != nil:
//	    return err
//	}
//	fmt.Printf("difference %.2f kg: %s\n", report.DifferenceWeight, report.Classification)
type GetReconciliationQuery struct {
	orderNumber string

	guard guard.ConstructorGuard
}

func NewGetReconciliationQuery(orderNumber string) (GetReconciliationQuery, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return GetReconciliationQuery{}, errs.NewValueIsRequiredError("order_number")
	}
	return GetReconciliationQuery{orderNumber: orderNumber, guard: guard.NewConstructorGuard()}, nil
}

func (q GetReconciliationQuery) Validate() error {
	return q.guard.Validate(ErrGetReconciliationQueryIsNotConstructed)
}

func (q GetReconciliationQuery) OrderNumber() string {
	return q.orderNumber
}
