package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned for an empty or whitespace-only query.
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned when GitHub has no account for the username.
	ErrNotFound = errors.New("user not found")
	// ErrTransport covers every other failure: network, unexpected status, bad payload.
	ErrTransport = errors.New("transport error")
)

// User-facing messages. Transport detail is logged, never shown.
const (
	MsgEmptyQuery     = "Please enter a GitHub username."
	MsgTransportError = "Error fetching data. Check your network or try again."
)

// NotFoundMessage returns the message shown when username does not exist.
func NotFoundMessage(username string) string {
	return fmt.Sprintf(`User "%s" not found.`, username)
}
