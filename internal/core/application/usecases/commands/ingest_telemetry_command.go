package commands

import (
	"errors"
	"strings"
	"time"

	"loading/internal/core/domain/model/order"
	"loading/internal/pkg/errs"
	"loading/internal/pkg/guard"
)

var ErrIngestTelemetryCommandIsNotConstructed = errors.New(
	"IngestTelemetryCommand must be created via NewIngestTelemetryCommand constructor",
)

// IngestTelemetryCommand carries one flow-meter reading for an order. Every field is
// required; no other validation is applied.
type IngestTelemetryCommand struct {
	orderNumber string
	reading     order.Reading

	guard guard.ConstructorGuard
}

func NewIngestTelemetryCommand(
	orderNumber string,
	timestamp time.Time,
	accumulatedMass, density, temperature, flowRate float64,
) (IngestTelemetryCommand, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return IngestTelemetryCommand{}, errs.NewValueIsRequiredError("order_number")
	}

	r, err := order.NewReading(timestamp, accumulatedMass, density, temperature, flowRate)
	if err != nil {
		return IngestTelemetryCommand{}, err
	}

	return IngestTelemetryCommand{
		orderNumber: orderNumber,
		reading:     r,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c IngestTelemetryCommand) Validate() error {
	return c.guard.Validate(ErrIngestTelemetryCommandIsNotConstructed)
}

func (c IngestTelemetryCommand) OrderNumber() string {
	return c.orderNumber
}

func (c IngestTelemetryCommand) Reading() order.Reading {
	return c.reading
}
