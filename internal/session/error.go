package session

import "errors"

var (
	// ErrCorruptRecord marks a persisted user record that could not be parsed.
	ErrCorruptRecord = errors.New("corrupt session record")

	ErrInvalidRole = errors.New("invalid role")
)
