package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnavailable wraps transport failures: the endpoint could not be reached
	// or the connection broke before a response arrived.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized matches a StatusError for 400, 401 or 403.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrEmptyPayload is returned for a successful response without the
	// requested field.
	ErrEmptyPayload = errors.New("empty payload")
	// ErrMalformedResponse is returned when a 2xx body is not the expected JSON.
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError is a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}

// Is lets errors.Is(err, ErrUnauthorized) match the statuses that invalidate
// a session.
func (e *StatusError) Is(target error) bool {
	if target != ErrUnauthorized {
		return false
	}
	switch e.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return true
	}
	return false
}

// APIError is a 2xx response whose body carries a GraphQL errors list.
// Messages may be empty: the server sent "errors": [].
type APIError struct {
	Messages []string
}

// Message returns the first message, or "unknown error" for an empty list.
func (e *APIError) Message() string {
	if len(e.Messages) == 0 || e.Messages[0] == "" {
		return "unknown error"
	}
	return e.Messages[0]
}

func (e *APIError) Error() string {
	return e.Message()
}

// AuthRelated reports whether the message looks like a rejected credential.
// The server gives no error codes, so this is a keyword match on the text.
func (e *APIError) AuthRelated() bool {
	m := strings.ToLower(e.Message())
	return strings.Contains(m, "autenticado") || strings.Contains(m, "token")
}
