package notify

import (
	"context"
	"errors"

	"loading/internal/core/ports"
)

// Multi fans an alert out to every channel and joins their errors.
type Multi []ports.Notifier

func (m Multi) Notify(ctx context.Context, recipient string, msg ports.AlertMessage) error {
	var errList []error
	for _, n := range m {
		if err := n.Notify(ctx, recipient, msg); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

// NoOp is used when no channel is configured.
type NoOp struct{}

func (NoOp) Notify(context.Context, string, ports.AlertMessage) error { return nil }
