package memory

import (
	"context"
	"time"

	"voicetask/internal/model"
	"voicetask/internal/task/repository"
	pkgLog "voicetask/pkg/log"
)

const commandBuffer = 64

// taskRecord is the stored form of a task. Values only, never pointers,
// so handing a record out of the loop is already a copy.
type taskRecord struct {
	task model.ScheduledTask
}

type result struct {
	task  model.ScheduledTask
	tasks []model.ScheduledTask
	err   error
}

type command struct {
	run   func() result
	reply chan result
}

// Store keeps all tasks in memory. Every operation, reads included, runs
// on the single owning goroutine, so scoring snapshots can never observe
// a half-written record.
type Store struct {
	l    pkgLog.Logger
	cmds chan command
	done chan struct{}

	// Owned by loop. Never touched from other goroutines.
	tasks map[string]taskRecord
	order []string
}

func (s *Store) loop() {
	for cmd := range s.cmds {
		cmd.reply <- cmd.run()
	}
	close(s.done)
}

// Close stops the owning goroutine. Pending commands are drained first.
func (s *Store) Close() {
	close(s.cmds)
	<-s.done
	s.l.Debugf(context.Background(), "task store closed with %d tasks", len(s.tasks))
}

func (s *Store) exec(ctx context.Context, run func() result) (result, error) {
	if err := ctx.Err(); err != nil {
		return result{}, err
	}
	cmd := command{run: run, reply: make(chan result, 1)}
	select {
	case s.cmds <- cmd:
	case <-ctx.Done():
		return result{}, ctx.Err()
	}
	select {
	case res := <-cmd.reply:
		return res, nil
	case <-ctx.Done():
		return result{}, ctx.Err()
	}
}

// Create stores a new task.
func (s *Store) Create(ctx context.Context, t model.ScheduledTask) (model.ScheduledTask, error) {
	res, err := s.exec(ctx, func() result {
		s.tasks[t.ID] = taskRecord{task: t}
		s.order = append(s.order, t.ID)
		return result{task: t}
	})
	if err != nil {
		return model.ScheduledTask{}, err
	}
	return res.task, res.err
}

// Get returns one task by ID, scoped to the owning user.
func (s *Store) Get(ctx context.Context, opt repository.GetOptions) (model.ScheduledTask, error) {
	res, err := s.exec(ctx, func() result {
		rec, ok := s.tasks[opt.TaskID]
		if !ok || rec.task.UserID != opt.UserID {
			return result{err: repository.ErrNotFound}
		}
		return result{task: rec.task}
	})
	if err != nil {
		return model.ScheduledTask{}, err
	}
	return res.task, res.err
}

// List returns the user's tasks in creation order.
func (s *Store) List(ctx context.Context, opt repository.ListOptions) ([]model.ScheduledTask, error) {
	res, err := s.exec(ctx, func() result {
		out := make([]model.ScheduledTask, 0, len(s.order))
		for _, id := range s.order {
			rec, ok := s.tasks[id]
			if !ok || rec.task.UserID != opt.UserID {
				continue
			}
			if opt.OnlyPending && rec.task.IsCompleted {
				continue
			}
			if opt.OnlyRecurring && !rec.task.IsRecurring {
				continue
			}
			out = append(out, rec.task)
		}
		return result{tasks: out}
	})
	if err != nil {
		return nil, err
	}
	return res.tasks, res.err
}

// ListAll returns every stored task in creation order, across all users.
// Used by the periodic re-scoring pass.
func (s *Store) ListAll(ctx context.Context) ([]model.ScheduledTask, error) {
	res, err := s.exec(ctx, func() result {
		out := make([]model.ScheduledTask, 0, len(s.order))
		for _, id := range s.order {
			if rec, ok := s.tasks[id]; ok {
				out = append(out, rec.task)
			}
		}
		return result{tasks: out}
	})
	if err != nil {
		return nil, err
	}
	return res.tasks, res.err
}

// SetCompleted toggles completion. Completing stamps CompletedAt,
// uncompleting clears it.
func (s *Store) SetCompleted(ctx context.Context, opt repository.SetCompletedOptions) (model.ScheduledTask, error) {
	res, err := s.exec(ctx, func() result {
		rec, ok := s.tasks[opt.TaskID]
		if !ok || rec.task.UserID != opt.UserID {
			return result{err: repository.ErrNotFound}
		}
		rec.task.IsCompleted = opt.Completed
		if opt.Completed {
			now := time.Now()
			rec.task.CompletedAt = &now
		} else {
			rec.task.CompletedAt = nil
		}
		s.tasks[opt.TaskID] = rec
		return result{task: rec.task}
	})
	if err != nil {
		return model.ScheduledTask{}, err
	}
	return res.task, res.err
}

// Delete removes a task permanently.
func (s *Store) Delete(ctx context.Context, opt repository.GetOptions) error {
	res, err := s.exec(ctx, func() result {
		rec, ok := s.tasks[opt.TaskID]
		if !ok || rec.task.UserID != opt.UserID {
			return result{err: repository.ErrNotFound}
		}
		delete(s.tasks, opt.TaskID)
		for i, id := range s.order {
			if id == opt.TaskID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return result{}
	})
	if err != nil {
		return err
	}
	return res.err
}
