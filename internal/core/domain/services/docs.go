// Package services provides domain services whose logic spans an aggregate and data
// that does not belong to it.
//
// The package includes:
//   - Reconciler: compares the weighbridge net weight of a finalized order with the
//     mass reported by the flow meter and classifies the difference
package services
