package commands

import (
	"errors"
	"strings"

	"loading/internal/core/domain/model/kernel"
	"loading/internal/pkg/errs"
	"loading/internal/pkg/guard"
)

var ErrRegisterInitialWeighingCommandIsNotConstructed = errors.New(
	"RegisterInitialWeighingCommand must be created via NewRegisterInitialWeighingCommand constructor",
)

// RegisterInitialWeighingCommand records the tare reported by the weighbridge.
type RegisterInitialWeighingCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	weight      kernel.Weight

	guard guard.ConstructorGuard
}

func NewRegisterInitialWeighingCommand(orderNumber string, kilograms float64) (RegisterInitialWeighingCommand, error) {
	cmd := RegisterInitialWeighingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setWeight(kilograms),
	); err != nil {
		return RegisterInitialWeighingCommand{}, err
	}

	return cmd, nil
}

func (c RegisterInitialWeighingCommand) Validate() error {
	return c.guard.Validate(ErrRegisterInitialWeighingCommandIsNotConstructed)
}

func (c RegisterInitialWeighingCommand) OrderNumber() string {
	return c.orderNumber
}

func (c RegisterInitialWeighingCommand) Weight() kernel.Weight {
	return c.weight
}

func (c *RegisterInitialWeighingCommand) setOrderNumber(orderNumber string) error {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("order_number")
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *RegisterInitialWeighingCommand) setWeight(kilograms float64) error {
	w, err := kernel.NewWeight(kilograms)
	if err != nil {
		return err
	}
	c.weight = w
	return nil
}
