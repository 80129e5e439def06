// Package guard provides a defensive construction pattern for commands,
// queries, and value objects: a zero-value struct fails validation until it
// has been created through its designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. It works by maintaining an internal flag that is only
// set when the object is built through the proper constructor; a zero-value
// struct fails Validate.
//
// Example usage:
//
//	var ErrDraftNotConstructed = errors.New("Draft must be created via NewDraft")
//
//	type Draft struct {
//	    itemName string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewDraft(itemName string) (Draft, error) {
//	    if itemName == "" {
//	        return Draft{}, errors.New("item name is required")
//	    }
//	    return Draft{itemName: itemName, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (d Draft) Validate() error {
//	    return d.guard.Validate(ErrDraftNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function.
//
// If the object was created as a zero value, this method returns the provided
// validation error; if validationError is nil, ErrDefaultConstructorGuard is
// returned instead.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
