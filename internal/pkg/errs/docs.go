// Package errs provides standardized error types for the procurement application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     validation failures on submitted fields
//   - ObjectNotFoundError: the addressed order or user does not exist
//   - AuthorizationDeniedError: the actor lacks a capability for an action
//   - InvalidTransitionError: illegal state-machine transition
//   - MissingArtifactError: an artifact reference was required but absent
//   - ConflictError: a concurrent mutation lost the optimistic-lock race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel, so callers classify with errors.Is
//
// All errors are returned as values between components, never used as control
// flow inside them. ValueIs*, AuthorizationDenied, and InvalidTransition
// require a corrected request; Conflict is retryable after a reload.
package errs
