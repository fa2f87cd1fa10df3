package attentive

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrResultTruncated reports that a "return all" fetch hit the pagination
// safety cap and the returned list is incomplete.
var ErrResultTruncated = errors.New("result set truncated")

// AuthError reports a missing API credential. Fatal; never retried.
type AuthError struct {
	Provider string
}

func (e *AuthError) Error() string {
	return "no API key configured for " + e.Provider
}

// APIError is a normalized non-2xx upstream response or transport failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// UnsupportedOperationError signals a resource/operation combination the
// adapter does not know. It points at a caller configuration bug.
type UnsupportedOperationError struct {
	Resource  string
	Operation string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("the operation %q is not supported for resource %q", e.Operation, e.Resource)
}

// classify maps upstream status codes onto stable, human-readable messages.
// Unrecognized codes pass the upstream message through unchanged.
func classify(status int, upstream string) string {
	switch status {
	case http.StatusBadRequest:
		return withDetail("Bad Request", upstream)
	case http.StatusUnauthorized:
		return "Unauthorized: Invalid API key"
	case http.StatusForbidden:
		return "Forbidden: Insufficient permissions"
	case http.StatusNotFound:
		return withDetail("Not Found", upstream)
	case http.StatusTooManyRequests:
		return withDetail("Rate Limited", upstream)
	case http.StatusInternalServerError:
		return withDetail("Server Error", upstream)
	default:
		return upstream
	}
}

func withDetail(prefix, upstream string) string {
	if upstream == "" {
		return prefix
	}
	return prefix + ": " + upstream
}
