package victorops

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for common failure modes.
var (
	ErrNoCredentials = errors.New("victorops: no credentials configured")
	ErrNoBaseURL     = errors.New("victorops: no base URL configured")

	// ErrInvalidHeaderValue indicates a credential contains characters that
	// cannot be carried in an HTTP header value.
	ErrInvalidHeaderValue = errors.New("victorops: credential contains characters not allowed in a header value")
)

// APIError represents a rejection by the VictorOps API: any response with
// status code >= 400. Message is the raw response body verbatim; the API
// does not guarantee a structured error payload, so no parsing is attempted.
type APIError struct {
	StatusCode int
	Message    string

	// Details carries the full exchange that produced the error.
	Details *RequestDetails
}

func (e *APIError) Error() string {
	return fmt.Sprintf("victorops: API error %d: %s", e.StatusCode, e.Message)
}

// AuthenticationError indicates authentication failure (401/403).
type AuthenticationError struct {
	APIError
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("victorops: authentication failed: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *AuthenticationError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// NotFoundError indicates a client-side search over a list response yielded
// no match. It is never produced for a remote 404; those surface as
// *APIError per the executor contract.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("victorops: %s not found", e.Resource)
	}
	return "victorops: resource not found"
}

// InvalidInputError indicates a precondition failure detected before any
// network call was made.
type InvalidInputError struct {
	Detail string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("victorops: invalid input: %s", e.Detail)
}

// parseError converts a failed exchange into the appropriate error type.
func parseError(details *RequestDetails) error {
	base := APIError{
		StatusCode: details.StatusCode,
		Message:    details.ResponseBody,
		Details:    details,
	}

	if details.StatusCode == http.StatusUnauthorized || details.StatusCode == http.StatusForbidden {
		return &AuthenticationError{APIError: base}
	}
	return &base
}

// validHeaderValue reports whether s can be used as an HTTP header value.
func validHeaderValue(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 && c != '\t' || c == 0x7f {
			return false
		}
	}
	return true
}
