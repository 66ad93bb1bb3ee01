// Package client is the request gateway for the bt-admin tool.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies gateway failures so callers can branch on the class
// of error without probing message contents.
type Kind int

const (
	// KindTransport: the request never produced a response.
	KindTransport Kind = iota

	// KindAuthExpired: the backend answered 401; the session has been
	// cleared and the caller must not retry.
	KindAuthExpired

	// KindRejected: any other non-2xx response.
	KindRejected

	// KindMalformed: a 2xx response whose body could not be decoded.
	KindMalformed
)

// String returns the kind name for logs and error text.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAuthExpired:
		return "auth_expired"
	case KindRejected:
		return "rejected"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Error is the normalized error value returned by the gateway.
//
// Message is extracted once, inside the gateway, with a fixed priority
// order over the shapes the backend is known to produce; callers never
// probe response bodies themselves.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status, 0 when no response was received
	Message string // human-readable message
	Detail  string // raw server-provided body, when one was readable
	Cause   error  // underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is a gateway Error of the given kind.
func IsKind(err error, k Kind) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Kind == k
}

// IsAuthExpired reports whether err is the terminal session-expired
// error. Callers seeing it must stop: the session is already cleared.
func IsAuthExpired(err error) bool {
	return IsKind(err, KindAuthExpired)
}

// errorBody covers the error shapes the backend produces. The priority
// order for the user-facing message is detail, message, data.detail,
// data.message.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
	Data    struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	} `json:"data"`
}

// messageFromBody extracts the server-provided error message from a
// non-2xx body, falling back to a status line when the body is not
// usable JSON.
func messageFromBody(body []byte, status int) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		switch {
		case eb.Detail != "":
			return eb.Detail
		case eb.Message != "":
			return eb.Message
		case eb.Data.Detail != "":
			return eb.Data.Detail
		case eb.Data.Message != "":
			return eb.Data.Message
		}
	}
	return fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
}
