package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"voicetask/internal/task/repository"
	"voicetask/internal/urgency"
	pkgLog "voicetask/pkg/log"
)

// Sink receives the result of each completed scoring pass. The task usecase
// registers one to keep its score cache warm between ticks.
type Sink interface {
	AbsorbScores(ranked []urgency.Ranked)
}

// Scheduler drives the periodic re-scoring pass. Every tick it scores the
// whole task list against the current clock, swaps the result in as an
// immutable snapshot and pushes it to the registered sinks. Readers never
// see a partially scored list.
type Scheduler struct {
	l        pkgLog.Logger
	repo     repository.Repository
	cron     *cron.Cron
	interval time.Duration
	sinks    []Sink

	// snapshot holds []urgency.Ranked; swapped whole, never mutated.
	snapshot atomic.Value

	now func() time.Time
}

// New creates a re-scoring scheduler. interval should be on the order of
// seconds; it is clamped to at least one second.
func New(l pkgLog.Logger, repo repository.Repository, interval time.Duration, sinks ...Sink) *Scheduler {
	if interval < time.Second {
		interval = time.Second
	}
	s := &Scheduler{
		l:        l,
		repo:     repo,
		cron:     cron.New(),
		interval: interval,
		sinks:    sinks,
		now:      time.Now,
	}
	s.snapshot.Store([]urgency.Ranked{})
	return s
}

// Start registers the re-scoring job and starts the cron loop. An immediate
// pass runs first so the snapshot is never empty while tasks exist.
func (s *Scheduler) Start(ctx context.Context) error {
	s.rescore(ctx)

	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cron.AddFunc(spec, func() { s.rescore(ctx) }); err != nil {
		return fmt.Errorf("failed to register re-scoring job: %w", err)
	}

	s.cron.Start()
	s.l.Infof(ctx, "re-scoring scheduler started, interval=%s", s.interval)
	return nil
}

// Stop halts the cron loop and waits for a running pass to finish.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
}

// Snapshot returns the most recent scored task list. The slice is shared
// and must be treated as read-only.
func (s *Scheduler) Snapshot() []urgency.Ranked {
	return s.snapshot.Load().([]urgency.Ranked)
}

func (s *Scheduler) rescore(ctx context.Context) {
	tasks, err := s.repo.ListAll(ctx)
	if err != nil {
		s.l.Errorf(ctx, "rescore: failed to list tasks: %v", err)
		return
	}

	ranked := urgency.Rank(tasks, s.now())
	s.snapshot.Store(ranked)

	for _, sink := range s.sinks {
		sink.AbsorbScores(ranked)
	}
}
