// Package errs provides standardized error types for the fleet back office.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type carrying the error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// These types cover unexpected failures (malformed input, missing objects).
// Expected business outcomes of the capacity core, such as loading
// rejections and advisory warnings, are deliberately NOT errors; they are
// returned as structured results so callers can present every problem at once.
package errs
