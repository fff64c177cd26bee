package qbittorrent

import (
	"errors"
	"fmt"
)

// Common errors returned by the qBittorrent client.
var (
	// ErrInvalidCredentials is returned when the login endpoint rejects the
	// username/password pair. qBittorrent answers HTTP 200 with a body other
	// than "Ok." in that case, so this is detected by body inspection.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotAuthenticated is returned when an operation requires a session
	// but no successful login has happened yet.
	ErrNotAuthenticated = errors.New("not authenticated, login first")
)

// RequestError represents a failed API call: a non-success HTTP status after
// the 403 retry budget is spent, or a transport-level failure.
type RequestError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("qbittorrent: request %q failed: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("qbittorrent: request %q failed with status %d", e.Endpoint, e.StatusCode)
}

// Unwrap returns the underlying transport error, if any.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsForbidden reports whether the final status was 403, meaning the retry
// budget was exhausted while the session stayed invalid.
func (e *RequestError) IsForbidden() bool {
	return e.StatusCode == 403
}

// ValidationError indicates a caller-supplied argument failed a local
// precondition. It is returned before any network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("qbittorrent: invalid %s: %s", e.Field, e.Reason)
}
