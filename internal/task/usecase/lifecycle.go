package usecase

import (
	"context"
	"errors"

	"voicetask/internal/model"
	"voicetask/internal/task"
	"voicetask/internal/task/repository"
)

// Complete marks a task done. Completed tasks drop out of rankings and the
// danger zone but stay listed until deleted.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, taskID string) (model.ScheduledTask, error) {
	return uc.setCompleted(ctx, sc, taskID, true)
}

// Uncomplete returns a completed task to the pending state.
func (uc *implUseCase) Uncomplete(ctx context.Context, sc model.Scope, taskID string) (model.ScheduledTask, error) {
	return uc.setCompleted(ctx, sc, taskID, false)
}

func (uc *implUseCase) setCompleted(ctx context.Context, sc model.Scope, taskID string, completed bool) (model.ScheduledTask, error) {
	t, err := uc.repo.SetCompleted(ctx, repository.SetCompletedOptions{
		UserID:    sc.UserID,
		TaskID:    taskID,
		Completed: completed,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.ScheduledTask{}, task.ErrTaskNotFound
		}
		return model.ScheduledTask{}, err
	}

	// Completion changes the score immediately, not on the next tick.
	uc.scoreCache.Remove(taskID)

	uc.l.Infof(ctx, "setCompleted: task=%s completed=%t", taskID, completed)
	return t, nil
}

// Delete removes a task permanently.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, taskID string) error {
	err := uc.repo.Delete(ctx, repository.GetOptions{UserID: sc.UserID, TaskID: taskID})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		return err
	}

	uc.scoreCache.Remove(taskID)

	uc.l.Infof(ctx, "Delete: task=%s", taskID)
	return nil
}

// List returns the user's tasks in creation order. With DueToday set, only
// tasks whose due moment falls inside the current calendar day survive.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	tasks, err := uc.repo.List(ctx, repository.ListOptions{UserID: sc.UserID})
	if err != nil {
		return task.ListOutput{}, err
	}

	if input.DueToday {
		start := uc.dateMath.StartOfDay(uc.now())
		end := uc.dateMath.EndOfDay(start)
		today := make([]model.ScheduledTask, 0, len(tasks))
		for _, t := range tasks {
			if t.DueAt.Before(start) || t.DueAt.After(end) {
				continue
			}
			today = append(today, t)
		}
		tasks = today
	}

	return task.ListOutput{Tasks: tasks, Count: len(tasks)}, nil
}
