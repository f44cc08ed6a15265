package refresher

import (
	"errors"
	"fmt"
)

// Kind identifies the failure category of a run. Every kind is terminal
// for the invocation; nothing is retried.
type Kind int

const (
	KindNone Kind = iota
	KindCredentialsUnreadable
	KindMissingRefreshToken
	KindRefreshRequestFailed
	KindInvalidRefreshResponse
	KindPersistFailed
)

var kindMessages = map[Kind]string{
	KindCredentialsUnreadable:  "Cannot read credentials",
	KindMissingRefreshToken:    "No refresh token in credentials",
	KindRefreshRequestFailed:   "Refresh request failed",
	KindInvalidRefreshResponse: "No access token in response",
	KindPersistFailed:          "Failed to save credentials",
}

// Error couples a failure kind with its underlying cause
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	msg := kindMessages[e.Kind]
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

// KindOf returns the failure kind carried by err, or KindNone
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}
