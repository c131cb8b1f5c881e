// Package errs provides standardized error types for the catering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found (or is not visible to the caller)
//   - TransitionIsNotAllowedError: For operations that are illegal in the current order status
//   - AccessIsDeniedError: For operations the caller's role may not perform
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Adapters classify errors with errors.Is against the sentinels, so the HTTP
// layer never has to know the concrete struct types.
package errs
