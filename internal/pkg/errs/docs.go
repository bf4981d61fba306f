// Package errs defines the error taxonomy shared across the marketplace
// application: required, invalid, out-of-range, not-found, version-conflict
// and not-authorized failures.
//
// Every family follows the same pattern: a sentinel for errors.Is
// classification (e.g. ErrObjectNotFound), a struct carrying the offending
// parameter, constructors with and without a cause, and Unwrap returning the
// sentinel. Adapters map the sentinels to transport codes; callers never
// match on message text.
package errs
