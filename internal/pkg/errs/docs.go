// Package errs provides standardized error types shared by the whole service.
//
// Each error type follows the same pattern: a sentinel error variable for
// classification with errors.Is, a struct carrying the error details,
// constructors with and without an underlying cause, an Error method producing
// a single-line message, and an Unwrap method returning the sentinel.
//
// The types cover the recurring failure classes of the application:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: a referenced object does not exist
//   - VersionIsInvalidError: an aggregate version is malformed or stale
package errs
