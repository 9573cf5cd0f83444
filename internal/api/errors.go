package api

import "errors"

// ErrUnauthenticated signals that no credential-backed session exists.
// Callers treat it as expected absence, not a failure to surface.
var ErrUnauthenticated = errors.New("not authenticated")

// genericReason is shown for transport-level failures. The underlying
// cause is kept for logs but never reaches the user.
const genericReason = "Network error. Please try again."

// Error is the normalized failure shape for every gateway operation.
// Reason is always safe to show to the user: either the server's own
// message for a business rejection, or a generic retry hint when the
// transport failed.
type Error struct {
	Reason string
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Reason + ": " + e.cause.Error()
	}
	return e.Reason
}

func (e *Error) Unwrap() error { return e.cause }

// Transient reports whether the failure came from the transport rather
// than a server-side rejection.
func (e *Error) Transient() bool { return e.cause != nil }

func transportError(err error) *Error {
	return &Error{Reason: genericReason, cause: err}
}

// Reason extracts the user-facing message from any gateway error,
// falling back to the generic retry hint.
func Reason(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Reason
	}
	return genericReason
}
