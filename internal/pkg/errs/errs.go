package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrObjectAlreadyExists  = errors.New("object already exists")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrValueIsRequired      = errors.New("value is required")
	ErrVersionIsInvalid     = errors.New("version is invalid")
	ErrStateIsInvalid       = errors.New("state is invalid")
	ErrProcessingFailure    = errors.New("processing failure")
	ErrBusinessRuleViolated = errors.New("business rule is violated")
)

// sanitize keeps caller supplied values on a single log line.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ObjectNotFoundError reports a lookup by identity that matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError reports a create that collided with an existing identity
// or natural key.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectAlreadyExists, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max)), e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError names a mandatory field that was absent or blank.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError reports an optimistic update whose expected row version
// no longer matches storage.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName), e.Cause)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// StateIsInvalidError reports an operation attempted from the wrong lifecycle state.
type StateIsInvalidError struct {
	ParamName string
	Current   string
	Expected  string
}

func NewStateIsInvalidError(paramName, current, expected string) *StateIsInvalidError {
	return &StateIsInvalidError{ParamName: paramName, Current: current, Expected: expected}
}

func (e *StateIsInvalidError) Error() string {
	return fmt.Sprintf("%s: %s is %s, expected %s", ErrStateIsInvalid, e.ParamName, e.Current, e.Expected)
}

func (e *StateIsInvalidError) Unwrap() error {
	return ErrStateIsInvalid
}

// ProcessingFailureError wraps an unexpected lower-layer failure. Both the sentinel
// and the cause stay reachable through errors.Is and errors.As.
type ProcessingFailureError struct {
	Operation string
	Cause     error
}

func NewProcessingFailureError(operation string, cause error) *ProcessingFailureError {
	return &ProcessingFailureError{Operation: operation, Cause: cause}
}

func (e *ProcessingFailureError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrProcessingFailure, e.Operation), e.Cause)
}

func (e *ProcessingFailureError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrProcessingFailure}
	}
	return []error{ErrProcessingFailure, e.Cause}
}

// NewBusinessRuleError builds a domain sentinel that classifies as ErrBusinessRuleViolated.
//
//	var ErrInvalidWeight = errs.NewBusinessRuleError("final weight is less than initial weight")
func NewBusinessRuleError(msg string) error {
	return fmt.Errorf("%w: %s", ErrBusinessRuleViolated, msg)
}

// knownKinds are the classified failures callers branch on.
var knownKinds = []error{
	ErrObjectNotFound,
	ErrObjectAlreadyExists,
	ErrValueIsInvalid,
	ErrValueIsOutOfRange,
	ErrValueIsRequired,
	ErrVersionIsInvalid,
	ErrStateIsInvalid,
	ErrProcessingFailure,
	ErrBusinessRuleViolated,
}

// IsClassified reports whether err already carries one of the package kinds.
func IsClassified(err error) bool {
	for _, kind := range knownKinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// WrapUnexpected passes classified errors through and wraps anything else as a
// ProcessingFailureError for operation.
func WrapUnexpected(operation string, err error) error {
	if err == nil || IsClassified(err) {
		return err
	}
	return NewProcessingFailureError(operation, err)
}
