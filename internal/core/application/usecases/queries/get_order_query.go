// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"strings"
	"time"

	"loading/internal/pkg/errs"
	"loading/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its weighbridge data and live readout.
//
// Example:
//
//	query, err := NewGetOrderQuery("OC-1001")
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//
//	o, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", o.Number, o.Status)
type GetOrderQuery struct {
	orderNumber string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order with the given number.
func NewGetOrderQuery(orderNumber string) (GetOrderQuery, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("order_number")
	}
	return GetOrderQuery{orderNumber: orderNumber, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderNumber() string {
	return q.orderNumber
}

// ReadoutResponse is the latest flow-meter reading of an order.
type ReadoutResponse struct {
	Timestamp       time.Time
	AccumulatedMass float64
	Density         float64
	Temperature     float64
	FlowRate        float64
}

// GetOrderQueryResponse is the order read model. Masters are shown by natural key;
// any of them may be nil for charging-system orders.
type GetOrderQueryResponse struct {
	Number        string
	ExternalCode  string
	ScheduledDate time.Time
	Preset        float64
	Status        string

	Client  *string
	Driver  *string
	Truck   *string
	Product *string

	InitialWeight     *float64
	FinalWeight       *float64
	ActivationCode    *string
	InitialWeighingAt *time.Time
	StartLoadingAt    *time.Time
	EndWeighingAt     *time.Time

	Readout *ReadoutResponse
}
