package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks transport-level failures: network unreachable, or a
// response that does not carry the backend envelope. Match with errors.Is.
var ErrUnavailable = errors.New("server unavailable")

// Error is an application failure reported through the envelope. Message is
// the backend-supplied text, passed through verbatim for display.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}
