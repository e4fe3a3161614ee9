// Package errs provides the typed error kinds shared by the loading order service.
//
// Every kind follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Business rule violations raised by the domain (invalid weight, missing telemetry,
// missing alert recipients) are built with NewBusinessRuleError so they classify under
// ErrBusinessRuleViolated while keeping their own sentinel for errors.Is.
//
// WrapUnexpected turns anything that is not one of these kinds into a
// ProcessingFailureError, so callers at the core boundary only ever see classified
// errors.
package errs
