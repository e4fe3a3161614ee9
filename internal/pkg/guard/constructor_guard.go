// Package guard provides ConstructorGuard, a marker embedded in commands, queries and
// value objects to tell constructor-built instances from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. A zero value fails Validate,
// which lets handlers reject commands that bypassed their constructor.
//
//	type RegisterInitialWeighingCommand struct {
//	    orderNumber string
//	    weight      kernel.Weight
//	    guard       guard.ConstructorGuard
//	}
//
//	func (c RegisterInitialWeighingCommand) Validate() error {
//	    return c.guard.Validate(ErrRegisterInitialWeighingCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil) if the
// guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
