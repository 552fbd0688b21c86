// Package guard detects domain objects that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects and entities. Its zero value
// marks an object that was declared directly instead of being built by its
// constructor, so such objects can be rejected before use.
//
// Example:
//
//	type Params struct {
//	    ownerCode string
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewParams(ownerCode string) Params {
//	    return Params{ownerCode: ownerCode, guard: guard.NewConstructorGuard()}
//	}
//
//	func (p Params) Validate() error {
//	    return p.guard.Validate(ErrParamsIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
