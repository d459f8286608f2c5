// Package guard implements the constructor-guard pattern used by domain
// value objects and entities to reject zero-value instances.
//
// Embedding a ConstructorGuard in a struct makes it possible to tell whether
// the struct was produced by its designated constructor or created as a zero
// value. Validate methods on domain types delegate to the guard so that any
// object reaching business logic is known to have passed construction-time
// validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed and the caller did not supply its own sentinel error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// The zero value of the guard reports the object as not constructed.
//
// Example:
//
//	type Price struct {
//	    amount int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewPrice(amount int) (Price, error) {
//	    if amount < 0 {
//	        return Price{}, errors.New("amount cannot be negative")
//	    }
//	    return Price{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Price) Validate() error {
//	    return p.guard.Validate(ErrPriceIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its holder as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
