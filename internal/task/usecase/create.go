package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"voicetask/internal/engine"
	"voicetask/internal/model"
	"voicetask/internal/task"
	"voicetask/internal/urgency"
	"voicetask/pkg/gcalendar"
)

// CreateFromTranscript turns a finalized voice transcript into a stored task.
// The LLM enhancer is tried first when available; any enhancer failure falls
// back silently to the local parsing pipeline, so capture never fails because
// an external service is down.
func (uc *implUseCase) CreateFromTranscript(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	transcript := strings.TrimSpace(input.Transcript)
	if transcript == "" {
		return task.CreateOutput{}, task.ErrEmptyTranscript
	}

	now := uc.now().In(uc.dateMath.Location())

	uc.l.Infof(ctx, "CreateFromTranscript: user=%s transcript_length=%d", sc.UserID, len(transcript))

	t, enhanced := uc.draftTask(ctx, now, transcript)
	if t.Title == "" {
		return task.CreateOutput{}, task.ErrEmptyTranscript
	}

	t.ID = uuid.NewString()
	t.UserID = sc.UserID
	t.CreatedAt = now

	stored, err := uc.repo.Create(ctx, t)
	if err != nil {
		return task.CreateOutput{}, err
	}

	calendarLink := uc.tryCreateCalendarEvent(ctx, stored)

	uc.l.Infof(ctx, "CreateFromTranscript: created task %q id=%s due=%s enhanced=%t",
		stored.Title, stored.ID, stored.DueAt.Format("2006-01-02 15:04"), enhanced)

	return task.CreateOutput{
		Task:         stored,
		Score:        urgency.Evaluate(stored, now),
		CalendarLink: calendarLink,
		Enhanced:     enhanced,
	}, nil
}

// draftTask produces the unscored task record from a transcript. The bool
// result reports whether the LLM enhancer produced it.
func (uc *implUseCase) draftTask(ctx context.Context, now time.Time, transcript string) (model.ScheduledTask, bool) {
	if uc.llm != nil && uc.llmLimiter.Allow() {
		if t, err := uc.enhanceWithLLM(ctx, now, transcript); err == nil {
			return t, true
		} else {
			uc.l.Warnf(ctx, "CreateFromTranscript: enhancer failed (non-fatal), using local parser: %v", err)
		}
	}

	draft, err := engine.ParseTranscript(uc.dateMath, now, transcript)
	if err != nil {
		return model.ScheduledTask{}, false
	}

	rec := draft.Recurrence
	return model.ScheduledTask{
		Title:          draft.TitleCandidate,
		DueAt:          engine.Resolve(now, draft),
		IsRecurring:    rec.IsRecurring,
		RecurrenceDays: rec.Days,
		DayOfMonth:     rec.DayOfMonth,
		Frequency:      draft.Frequency(),
		Priority:       draft.Priority,
	}, false
}

// tryCreateCalendarEvent mirrors a task into Google Calendar. Returns the
// event HTML link, or empty string on failure (graceful degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.ScheduledTask) string {
	if uc.calendar == nil {
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: uc.calendarID,
		Summary:    t.Title,
		StartTime:  t.DueAt,
		EndTime:    t.DueAt.Add(defaultEventDuration),
		Timezone:   uc.timezone,
		Recurrence: gcalendar.RecurrenceRule(t.Frequency, t.RecurrenceDays, t.DayOfMonth),
	})
	if err != nil {
		uc.l.Warnf(ctx, "CreateFromTranscript: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}

	return event.HtmlLink
}
