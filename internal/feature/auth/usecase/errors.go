// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"errors"
	"strings"
)

var (
	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when attempting to create or rename a user
	// with a username that already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrPasswordMismatch is returned when the two password fields of a
	// register or update request are not byte-for-byte equal.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidCredentials is returned on login when the username is unknown
	// or the password is wrong. The two cases are deliberately not
	// distinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// WeakPasswordError reports a rejected candidate password together with the
// strength score and feedback that disqualified it.
type WeakPasswordError struct {
	Score       int
	Warning     string
	Suggestions []string
}

func (e *WeakPasswordError) Error() string {
	parts := make([]string, 0, 1+len(e.Suggestions))
	if e.Warning != "" {
		parts = append(parts, e.Warning)
	}
	parts = append(parts, e.Suggestions...)
	return strings.TrimSpace("weak password: " + strings.Join(parts, " "))
}
