package commands

import (
	"context"
	"errors"

	"loading/internal/pkg/errs"
)

const (
	// weighingAttempts lets a weighbridge call that lost a version race re-read the
	// order once, so the caller gets the real state error instead of a conflict.
	weighingAttempts = 2

	// telemetryAttempts bounds retries of high-frequency readings racing each other.
	telemetryAttempts = 5
)

// retryOnConflict runs fn until it returns anything but a version conflict, at most
// attempts times.
func retryOnConflict(ctx context.Context, attempts int, fn func() error) error {
	var err error
	for range attempts {
		err = fn()
		if !errors.Is(err, errs.ErrVersionIsInvalid) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return err
}
