package commands

import (
	"errors"
	"strings"

	"loading/internal/core/domain/model/kernel"
	"loading/internal/pkg/errs"
	"loading/internal/pkg/guard"
)

var ErrRegisterFinalWeighingCommandIsNotConstructed = errors.New(
	"RegisterFinalWeighingCommand must be created via NewRegisterFinalWeighingCommand constructor",
)

// RegisterFinalWeighingCommand records the gross weight reported by the weighbridge.
type RegisterFinalWeighingCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	weight      kernel.Weight

	guard guard.ConstructorGuard
}

func NewRegisterFinalWeighingCommand(orderNumber string, kilograms float64) (RegisterFinalWeighingCommand, error) {
	cmd := RegisterFinalWeighingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setWeight(kilograms),
	); err != nil {
		return RegisterFinalWeighingCommand{}, err
	}

	return cmd, nil
}

func (c RegisterFinalWeighingCommand) Validate() error {
	return c.guard.Validate(ErrRegisterFinalWeighingCommandIsNotConstructed)
}

func (c RegisterFinalWeighingCommand) OrderNumber() string {
	return c.orderNumber
}

func (c RegisterFinalWeighingCommand) Weight() kernel.Weight {
	return c.weight
}

func (c *RegisterFinalWeighingCommand) setOrderNumber(orderNumber string) error {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("order_number")
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *RegisterFinalWeighingCommand) setWeight(kilograms float64) error {
	w, err := kernel.NewWeight(kilograms)
	if err != nil {
		return err
	}
	c.weight = w
	return nil
}
