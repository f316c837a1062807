package tracking

import "errors"

// Domain error taxonomy. Handlers map these to HTTP statuses; callers
// test with errors.Is.
var (
	// ErrValidation marks malformed input (missing or sentinel
	// coordinates, unknown source). Never retried automatically.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden marks a policy denial: customer reports disabled
	// for the truck, or the caller lacks the required role.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict marks a duplicate start-tracking call while a
	// session is already active.
	ErrConflict = errors.New("conflict")

	// ErrNotFound marks an unknown truck.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable marks a transient persistence failure. The
	// submission was not applied and is safe to retry.
	ErrUnavailable = errors.New("temporarily unavailable")
)

// IsRetryable reports whether the failure is transient and the same
// submission may succeed later.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
