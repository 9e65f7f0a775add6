// Package errs provides standardized error types for the admin application.
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without cause
//   - Unwrap returning the sentinel
//
// Domain constructors join these with errors.Join so a caller sees every
// invalid field at once.
package errs
