package commands

import (
	"errors"

	"loading/internal/core/domain/model/alarm"
	"loading/internal/pkg/guard"
)

var ErrUpdateAlertConfigCommandIsNotConstructed = errors.New(
	"UpdateAlertConfigCommand must be created via NewUpdateAlertConfigCommand constructor",
)

// UpdateAlertConfigCommand replaces the threshold and the recipient list.
type UpdateAlertConfigCommand struct {
	config alarm.AlertConfig

	guard guard.ConstructorGuard
}

func NewUpdateAlertConfigCommand(threshold float64, recipients []string) (UpdateAlertConfigCommand, error) {
	cfg, err := alarm.NewAlertConfig(threshold, recipients, false)
	if err != nil {
		return UpdateAlertConfigCommand{}, err
	}
	return UpdateAlertConfigCommand{config: cfg, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateAlertConfigCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAlertConfigCommandIsNotConstructed)
}

func (c UpdateAlertConfigCommand) Threshold() float64 {
	return c.config.Threshold()
}

func (c UpdateAlertConfigCommand) Recipients() []string {
	return c.config.Recipients()
}

func (c UpdateAlertConfigCommand) Config() alarm.AlertConfig {
	return c.config
}
