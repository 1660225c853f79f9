package task

import (
	"voicetask/internal/model"
)

// CreateInput is the input for creating a task from a voice transcript.
type CreateInput struct {
	Transcript string // Finalized speech-to-text output
}

// CreateOutput is the result of transcript capture.
type CreateOutput struct {
	Task         model.ScheduledTask
	Score        model.UrgencyScore
	CalendarLink string // Deep link to the mirrored calendar event (may be empty)
	Enhanced     bool   // True when the LLM enhancer produced the draft
}

// ListInput filters a task listing.
type ListInput struct {
	DueToday bool // keep only tasks due before the end of the current day
}

// ListOutput is the result of listing a user's tasks.
type ListOutput struct {
	Tasks []model.ScheduledTask
	Count int
}

// RankedTask pairs a task with its urgency score for presentation.
type RankedTask struct {
	Task  model.ScheduledTask
	Score model.UrgencyScore
}

// RankingsOutput is the result of urgency ranking and danger-zone queries.
type RankingsOutput struct {
	Tasks []RankedTask
	Count int
}
