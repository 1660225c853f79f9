package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTranscript = errors.New("no speech detected")
	ErrTaskNotFound    = errors.New("task not found")
)
