// Package errs provides the typed errors shared by the shipping domain.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsOutOfRange) returned by Unwrap
//   - a struct carrying the offending parameter and an optional Cause
//   - constructors with and without cause
//   - an Is method so errors.Is also matches sentinels carried by the Cause
//
// The last point lets domain packages attach their own sentinel (for example
// a temperature bound violation) while callers can still classify the error
// generically as an invalid or out-of-range value.
package errs
