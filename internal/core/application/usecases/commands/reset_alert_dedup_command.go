package commands

import (
	"errors"

	"loading/internal/pkg/guard"
)

var ErrResetAlertDedupCommandIsNotConstructed = errors.New(
	"ResetAlertDedupCommand must be created via NewResetAlertDedupCommand constructor",
)

// ResetAlertDedupCommand re-arms temperature alerting after a breach was notified.
// It is issued by operators or by the scheduled reset job.
type ResetAlertDedupCommand struct {
	guard guard.ConstructorGuard
}

func NewResetAlertDedupCommand() ResetAlertDedupCommand {
	return ResetAlertDedupCommand{guard: guard.NewConstructorGuard()}
}

func (c ResetAlertDedupCommand) Validate() error {
	return c.guard.Validate(ErrResetAlertDedupCommandIsNotConstructed)
}
