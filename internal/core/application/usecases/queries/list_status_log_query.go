package queries

import (
	"errors"
	"strings"
	"time"

	"loading/internal/pkg/errs"
	"loading/internal/pkg/guard"
)

var ErrListStatusLogQueryIsNotConstructed = errors.New(
	"ListStatusLogQuery must be created via NewListStatusLogQuery constructor",
)

// ListStatusLogQuery retrieves the audit trail of one order.
type ListStatusLogQuery struct {
	orderNumber string

	guard guard.ConstructorGuard
}

func NewListStatusLogQuery(orderNumber string) (ListStatusLogQuery, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return ListStatusLogQuery{}, errs.NewValueIsRequiredError("order_number")
	}
	return ListStatusLogQuery{orderNumber: orderNumber, guard: guard.NewConstructorGuard()}, nil
}

func (q ListStatusLogQuery) Validate() error {
	return q.guard.Validate(ErrListStatusLogQueryIsNotConstructed)
}

func (q ListStatusLogQuery) OrderNumber() string {
	return q.orderNumber
}

// StatusLogEntryResponse is one accepted transition. From is nil for the creation
// entry.
type StatusLogEntryResponse struct {
	ID        int64
	From      *string
	To        string
	Actor     string
	Note      string
	ChangedAt time.Time
}
