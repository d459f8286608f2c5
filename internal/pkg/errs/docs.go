// Package errs provides the standardized error types used across the
// application.
//
// The taxonomy mirrors how failures are handled at the edges:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     validation failures, rejected before any gateway or repository call
//   - ObjectNotFoundError: lookups by identifier that found nothing
//   - ObjectAlreadyTakenError: lost compare-and-set races, surfaced to the
//     caller as a recoverable conflict rather than a retryable fault
//
// Each error type follows the same pattern: a sentinel error variable (for
// errors.Is classification), a struct carrying the details, constructors with
// and without a cause, and Error/Unwrap methods. Handlers map the sentinel to
// an HTTP status; everything below the adapters works with errors.Is against
// the sentinels and never inspects messages.
package errs
