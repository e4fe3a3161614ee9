package commands

import (
	"errors"
	"strings"

	"loading/internal/pkg/errs"
	"loading/internal/pkg/guard"
)

var ErrAcknowledgeAlarmCommandIsNotConstructed = errors.New(
	"AcknowledgeAlarmCommand must be created via NewAcknowledgeAlarmCommand constructor",
)

// AcknowledgeAlarmCommand records that an operator has seen an alarm.
type AcknowledgeAlarmCommand struct {
	alarmID      int64
	user         string
	observations string

	guard guard.ConstructorGuard
}

func NewAcknowledgeAlarmCommand(alarmID int64, user, observations string) (AcknowledgeAlarmCommand, error) {
	var errList []error
	if alarmID <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("alarm_id", alarmID, 1, "+Inf"))
	}
	user = strings.TrimSpace(user)
	if user == "" {
		errList = append(errList, errs.NewValueIsRequiredError("user"))
	}
	if err := errors.Join(errList...); err != nil {
		return AcknowledgeAlarmCommand{}, err
	}

	return AcknowledgeAlarmCommand{
		alarmID:      alarmID,
		user:         user,
		observations: strings.TrimSpace(observations),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c AcknowledgeAlarmCommand) Validate() error {
	return c.guard.Validate(ErrAcknowledgeAlarmCommandIsNotConstructed)
}

func (c AcknowledgeAlarmCommand) AlarmID() int64 { return c.alarmID }
func (c AcknowledgeAlarmCommand) User() string { return c.user }
func (c AcknowledgeAlarmCommand) Observations() string { return c.observations }
