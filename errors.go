package banxa

import (
	"errors"
	"fmt"
)

// APIError represents a non-2xx response from the Banxa API.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("banxa: %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Sentinel errors for common HTTP status codes.
var (
	ErrUnauthorized = errors.New("banxa: unauthorized (401)")
	ErrForbidden    = errors.New("banxa: forbidden (403)")
	ErrNotFound     = errors.New("banxa: not found (404)")
	ErrRateLimited  = errors.New("banxa: rate limited (429)")
)

// AuthError indicates an authentication/signing failure.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("banxa auth: %s", e.Message)
}

// ValidationError indicates invalid input parameters rejected before a
// request is signed or sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("banxa validation: %s: %s", e.Field, e.Message)
}
