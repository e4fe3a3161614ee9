package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"loading/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "OC-1001")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "OC-1001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: OC-1001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("alarm", "42", cause)

		assert.Equal(t,
			"object not found: param is: alarm, ID is: 42 (cause: record not found)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("order", "OC-1001")

	assert.Equal(t, "object already exists: order OC-1001", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)

	withCause := errs.NewObjectAlreadyExistsErrorWithCause("truck", "AB123CD", errors.New("23505"))
	assert.Equal(t, "object already exists: truck AB123CD (cause: 23505)", withCause.Error())
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidErrorWithCause("activation code", errors.New("must be 5 digits"))

	assert.Equal(t, "value is invalid: activation code (cause: must be 5 digits)", err.Error())
	assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("weight", -5, 0, "+Inf")

		assert.Equal(t, "value is invalid: -5 is weight, min value is 0, max value is +Inf", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("driver.document_number")

	assert.Equal(t, "driver.document_number", err.ParamName)
	assert.Equal(t, "value is required: driver.document_number", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestVersionIsInvalidError(t *testing.T) {
	err := errs.NewVersionIsInvalidError("order OC-1")

	assert.Equal(t, "version is invalid: order OC-1", err.Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
}

func TestStateIsInvalidError(t *testing.T) {
	err := errs.NewStateIsInvalidError("order", "PENDING", "LOADING")

	assert.Equal(t, "state is invalid: order is PENDING, expected LOADING", err.Error())
	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
}

func TestProcessingFailureError(t *testing.T) {
	cause := errors.New("connection reset")
	err := errs.NewProcessingFailureError("create order", cause)

	assert.Equal(t, "processing failure: create order (cause: connection reset)", err.Error())
	require.ErrorIs(t, err, errs.ErrProcessingFailure)
	require.ErrorIs(t, err, cause)
}

func TestWrapUnexpected(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, errs.WrapUnexpected("op", nil))
	})

	t.Run("classified errors pass through", func(t *testing.T) {
		notFound := fmt.Errorf("loading: %w", errs.NewObjectNotFoundError("order", "X"))
		assert.Equal(t, notFound, errs.WrapUnexpected("op", notFound))

		rule := errs.NewBusinessRuleError("final weight is less than initial weight")
		assert.Equal(t, rule, errs.WrapUnexpected("op", rule))
	})

	t.Run("unclassified errors become processing failures", func(t *testing.T) {
		raw := errors.New("disk full")
		err := errs.WrapUnexpected("ingest telemetry", raw)

		var failure *errs.ProcessingFailureError
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, "ingest telemetry", failure.Operation)
		require.ErrorIs(t, err, raw)
	})
}

func TestBusinessRuleError(t *testing.T) {
	sentinel := errs.NewBusinessRuleError("no telemetry data")
	wrapped := fmt.Errorf("order OC-9: %w", sentinel)

	require.ErrorIs(t, wrapped, sentinel)
	require.ErrorIs(t, wrapped, errs.ErrBusinessRuleViolated)
	assert.True(t, errs.IsClassified(wrapped))
	assert.Equal(t, "business rule is violated: no telemetry data", sentinel.Error())
}
