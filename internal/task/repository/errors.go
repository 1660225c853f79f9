package repository

import "errors"

var (
	// ErrNotFound is returned when no task matches the given ID for the user.
	ErrNotFound = errors.New("task not found")
)
