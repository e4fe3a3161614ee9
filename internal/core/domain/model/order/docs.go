// Package order implements the loading order aggregate and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root keyed by the externally supplied order number
//   - Status: the state machine PENDING -> TARA_REGISTERED -> LOADING -> FINALIZED
//   - Reading and Detail: flow-meter telemetry snapshots
//   - Transition: the audit record produced by every accepted state change
//
// Key business rules:
//   - Status only moves forward, one step at a time
//   - The tare (initial weight) is recorded only while PENDING
//   - The gross (final weight) is recorded only while LOADING and never below the tare
//   - The live readout always mirrors the latest telemetry reading by timestamp
package order
