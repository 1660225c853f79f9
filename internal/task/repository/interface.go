package repository

import (
	"context"

	"voicetask/internal/model"
)

// Repository is the interface for task persistence.
//
// Implementations own all task mutation. Everything returned is a copy,
// so callers can read without racing the store.
type Repository interface {
	Create(ctx context.Context, task model.ScheduledTask) (model.ScheduledTask, error)
	Get(ctx context.Context, opt GetOptions) (model.ScheduledTask, error)
	List(ctx context.Context, opt ListOptions) ([]model.ScheduledTask, error)
	ListAll(ctx context.Context) ([]model.ScheduledTask, error)
	SetCompleted(ctx context.Context, opt SetCompletedOptions) (model.ScheduledTask, error)
	Delete(ctx context.Context, opt GetOptions) error
}

// GetOptions identifies a single task within a user's collection.
type GetOptions struct {
	UserID string
	TaskID string
}

// ListOptions filters a user's task collection.
type ListOptions struct {
	UserID        string
	OnlyPending   bool
	OnlyRecurring bool
}

// SetCompletedOptions toggles the completion state of one task.
type SetCompletedOptions struct {
	UserID    string
	TaskID    string
	Completed bool
}
