package urgency

import (
	"sort"
	"time"

	"voicetask/internal/model"
)

// DefaultDangerWindow is the remaining-time threshold below which a pending
// task enters the danger zone.
const DefaultDangerWindow = 30 * time.Minute

// Ranked pairs a task with its score for display ordering.
type Ranked struct {
	Task  model.ScheduledTask
	Score model.UrgencyScore
}

// Rank scores every task at now and sorts descending by score, ties broken
// by title. Input tasks are read-only; ranking never mutates task state.
func Rank(tasks []model.ScheduledTask, now time.Time) []Ranked {
	ranked := make([]Ranked, 0, len(tasks))
	for _, t := range tasks {
		ranked = append(ranked, Ranked{Task: t, Score: Evaluate(t, now)})
	}

	Sort(ranked)
	return ranked
}

// Sort orders already-scored entries in place: descending by score value,
// ties broken by title so equal scores display in a stable order.
func Sort(ranked []Ranked) {
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score.Value != ranked[j].Score.Value {
			return ranked[i].Score.Value > ranked[j].Score.Value
		}
		return ranked[i].Task.Title < ranked[j].Task.Title
	})
}

// Top bounds a ranked list to its first n entries. n <= 0 means all.
func Top(ranked []Ranked, n int) []Ranked {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}

// DangerZone returns the pending tasks whose remaining time is under the
// window, ranked. Overdue tasks are excluded, and so are low-priority
// recurring tasks, which would otherwise flood the zone with trivial
// repeating chores.
func DangerZone(tasks []model.ScheduledTask, now time.Time, window time.Duration) []Ranked {
	if window <= 0 {
		window = DefaultDangerWindow
	}

	urgent := make([]model.ScheduledTask, 0, len(tasks))
	for _, t := range tasks {
		if t.IsCompleted {
			continue
		}
		remaining := t.DueAt.Sub(now)
		if remaining <= 0 || remaining >= window {
			continue
		}
		if t.Priority == model.PriorityLow && t.IsRecurring {
			continue
		}
		urgent = append(urgent, t)
	}

	return Rank(urgent, now)
}
