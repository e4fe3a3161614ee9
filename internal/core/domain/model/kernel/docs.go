// Package kernel provides the value objects shared by every aggregate of the loading
// order service.
//
// The package includes:
//   - UUID: identifier for master entities and alarms
//   - Weight: a non-negative scale reading in kilograms
//   - ActivationCode: the 5-digit token issued when the tare is registered
//
// All value objects are immutable. Their zero values are invalid and fail Validate.
package kernel
