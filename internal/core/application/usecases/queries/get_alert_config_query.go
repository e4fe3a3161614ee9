package queries

import (
	"errors"

	"loading/internal/pkg/guard"
)

var ErrGetAlertConfigQueryIsNotConstructed = errors.New(
	"GetAlertConfigQuery must be created via NewGetAlertConfigQuery constructor",
)

// GetAlertConfigQuery reads the temperature alert configuration.
type GetAlertConfigQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAlertConfigQuery() GetAlertConfigQuery {
	return GetAlertConfigQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAlertConfigQuery) Validate() error {
	return q.guard.Validate(ErrGetAlertConfigQueryIsNotConstructed)
}

type GetAlertConfigQueryResponse struct {
	Threshold        float64
	Recipients       []string
	EmailAlreadySent bool
}
