// Package guard provides the constructor-guard pattern used across the domain
// model. Embedding a ConstructorGuard in an entity or value object makes it
// possible to detect zero-value instances that bypassed the designated
// constructor, so invariants established at construction time cannot be
// silently skipped.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil validation error. Validation always fails with a meaningful message even
// when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor. The zero value is "not constructed" and fails
// validation.
//
// Example usage:
//
//	type Zone struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewZone(name string) (*Zone, error) {
//	    if name == "" {
//	        return nil, errors.New("name is required")
//	    }
//	    return &Zone{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (z *Zone) Validate() error {
//	    return z.guard.Validate(ErrZoneIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly
// constructed. Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object went through its constructor.
// Returns nil for constructed objects. For zero-value objects it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
