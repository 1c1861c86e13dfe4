// Package errs provides the typed errors shared by the fulfillment core.
//
// Every error type follows the same shape:
//   - a sentinel variable (ErrObjectNotFound, ErrValueIsInvalid, ...) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Domain packages define their own sentinels (invalid transition, unauthorized,
// pending role assignment) and reuse these types for plain value validation
// and lookups.
package errs
