package repo

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail marks a unique-constraint violation on users.email so
	// callers can answer with a conflict instead of a generic storage error.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrPostNotFound is returned both when a post does not exist and when it
	// exists but belongs to another author. Mutations must not reveal which.
	ErrPostNotFound = errors.New("post not found")
)
