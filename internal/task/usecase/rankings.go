package usecase

import (
	"context"
	"time"

	"voicetask/internal/model"
	"voicetask/internal/task"
	"voicetask/internal/task/repository"
	"voicetask/internal/urgency"
)

// Rankings returns the user's tasks ordered by urgency, most urgent first.
// limit <= 0 returns all. Scores come from the cache, which the re-scoring
// scheduler primes every tick; only tasks it has not seen yet are scored
// inline.
func (uc *implUseCase) Rankings(ctx context.Context, sc model.Scope, limit int) (task.RankingsOutput, error) {
	tasks, err := uc.repo.List(ctx, repository.ListOptions{UserID: sc.UserID, OnlyPending: true})
	if err != nil {
		return task.RankingsOutput{}, err
	}

	now := uc.now().In(uc.dateMath.Location())

	ranked := make([]urgency.Ranked, 0, len(tasks))
	for _, t := range tasks {
		ranked = append(ranked, urgency.Ranked{Task: t, Score: uc.scoreOf(t, now)})
	}
	urgency.Sort(ranked)
	ranked = urgency.Top(ranked, limit)

	out := make([]task.RankedTask, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, task.RankedTask{Task: r.Task, Score: r.Score})
	}

	return task.RankingsOutput{Tasks: out, Count: len(out)}, nil
}

// DangerZone returns incomplete tasks due within the warning window.
func (uc *implUseCase) DangerZone(ctx context.Context, sc model.Scope) (task.RankingsOutput, error) {
	tasks, err := uc.repo.List(ctx, repository.ListOptions{UserID: sc.UserID, OnlyPending: true})
	if err != nil {
		return task.RankingsOutput{}, err
	}

	now := uc.now().In(uc.dateMath.Location())

	inZone := urgency.DangerZone(tasks, now, uc.dangerWindow)
	out := make([]task.RankedTask, 0, len(inZone))
	for _, r := range inZone {
		out = append(out, task.RankedTask{Task: r.Task, Score: r.Score})
	}

	return task.RankingsOutput{Tasks: out, Count: len(out)}, nil
}

// AbsorbScores primes the score cache from a completed re-scoring pass, so
// ranked views serve the scheduler's scores instead of recomputing them per
// request.
func (uc *implUseCase) AbsorbScores(ranked []urgency.Ranked) {
	for _, r := range ranked {
		uc.scoreCache.Add(r.Task.ID, r.Score)
	}
}

// scoreOf returns the cached score for a task, computing and caching it on
// miss. The cache TTL matches the re-scoring interval, so staleness is
// bounded by one tick.
func (uc *implUseCase) scoreOf(t model.ScheduledTask, now time.Time) model.UrgencyScore {
	if score, ok := uc.scoreCache.Get(t.ID); ok {
		return score
	}
	score := urgency.Evaluate(t, now)
	uc.scoreCache.Add(t.ID, score)
	return score
}
