package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable wraps transport-level failures: the backend could not
	// be reached at all.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized matches HTTP 401 responses. Callers clear the local
	// session when they see it.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound matches HTTP 404 responses and missing-entity payloads.
	ErrNotFound = errors.New("not found")
)

// Error carries the backend-provided message for a non-success HTTP status.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string { return e.Msg }

// Unwrap maps well-known statuses onto sentinel errors so callers can use
// errors.Is without inspecting status codes.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

func newError(status int, body []byte) *Error {
	msg := messageFromBody(body)
	if msg == "" {
		msg = fmt.Sprintf("API Error: %d", status)
	}
	return &Error{Status: status, Msg: msg}
}
