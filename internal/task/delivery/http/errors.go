package http

import "errors"

var (
	errSessionNotFound = errors.New("capture session not found or expired")
	errMissingTaskID   = errors.New("task id is required")
)
