package http

import (
	"errors"
	"net/http"

	"loading/internal/core/domain/model/alarm"
	"loading/internal/core/domain/model/order"
	"loading/internal/core/domain/services"
	"loading/internal/generated/servers"
	"loading/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps error kinds to HTTP status codes. Specific domain sentinels are
// checked before the kinds they wrap.
func statusOf(err error) int {
	switch {
	case errors.Is(err, order.ErrInvalidWeight):
		return http.StatusBadRequest
	case errors.Is(err, alarm.ErrNoRecipientsConfigured):
		return http.StatusInternalServerError
	case errors.Is(err, services.ErrNoTelemetryData):
		return http.StatusConflict
	case errors.Is(err, errs.ErrProcessingFailure):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrStateIsInvalid),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, errs.ErrBusinessRuleViolated):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error response. Unclassified failures are logged and reported
// without their cause.
func fail(ctx echo.Context, operation string, err error) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError && !errors.Is(err, errs.ErrBusinessRuleViolated) {
		ctx.Logger().Errorf("%s: %v", operation, err)
		message = "Failed to " + operation
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
