package task

import (
	"context"

	"voicetask/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// CreateFromTranscript turns a finalized voice transcript into a stored
	// task, resolving relative dates and repeat schedules to absolute times.
	CreateFromTranscript(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// Complete marks a task done; Uncomplete reverses it.
	Complete(ctx context.Context, sc model.Scope, taskID string) (model.ScheduledTask, error)
	Uncomplete(ctx context.Context, sc model.Scope, taskID string) (model.ScheduledTask, error)

	// Delete removes a task permanently.
	Delete(ctx context.Context, sc model.Scope, taskID string) error

	// List returns the user's tasks in creation order, optionally reduced
	// to the ones due today.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Rankings returns tasks ordered by urgency, most urgent first.
	Rankings(ctx context.Context, sc model.Scope, limit int) (RankingsOutput, error)

	// DangerZone returns incomplete tasks whose due time is inside the
	// configured warning window.
	DangerZone(ctx context.Context, sc model.Scope) (RankingsOutput, error)
}
