package adapter

import "errors"

// Sentinel errors mapped from transport-level failures. Callers match them
// with [errors.Is].
var (
	// ErrUnauthenticated indicates a missing, invalid, or expired session
	// credential (HTTP 401). Non-retryable; the caller must re-authenticate.
	ErrUnauthenticated = errors.New("client unauthenticated")

	// ErrBadRequest indicates a malformed request the server rejected
	// (4xx other than 401/404/408). Non-retryable.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound indicates the requested resource does not exist (404).
	ErrNotFound = errors.New("not found")

	// ErrRemoteUnavailable indicates a transient failure class (network
	// error, 5xx, or request timeout) that survived the whole retry budget.
	ErrRemoteUnavailable = errors.New("remote unavailable")
)
