package workforce

import "errors"

var (
	// ErrNotFound means a referenced entity id does not exist. Recoverable
	// by re-navigating or refreshing.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable means the backend could not be reached or failed.
	// Surfaced to the user as retryable; never swallowed.
	ErrUnavailable = errors.New("backend unavailable")
	// ErrUnauthorized means a missing or under-privileged session. The
	// access gate resolves this into a redirect.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConfiguration marks an invalid setup, such as an access policy
	// with no allowed roles. Fatal, not retryable.
	ErrConfiguration = errors.New("configuration error")
	// ErrAlreadyProcessed means a timesheet decision was already recorded;
	// the PENDING to APPROVED/REJECTED transition is one-way.
	ErrAlreadyProcessed = errors.New("timesheet already processed")
)
