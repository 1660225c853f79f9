package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"voicetask/internal/model"
	"voicetask/pkg/datemath"
	"voicetask/pkg/gemini"
)

const defaultEventDuration = 30 * time.Minute

// enhanceWithLLM asks the model for a structured draft and converts it to a
// task record. Any malformed field fails the whole enhancement, so the
// caller falls back to local parsing instead of storing a half-parsed task.
func (uc *implUseCase) enhanceWithLLM(ctx context.Context, now time.Time, transcript string) (model.ScheduledTask, error) {
	prompt := gemini.BuildDraftPrompt(transcript, now.Format(time.RFC3339))

	req := gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Parts: []gemini.Part{
					{Text: prompt},
				},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.2, // Low temperature for deterministic JSON output
			MaxOutputTokens: 512,
		},
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return model.ScheduledTask{}, fmt.Errorf("LLM request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return model.ScheduledTask{}, fmt.Errorf("empty response from LLM")
	}

	responseText := resp.Candidates[0].Content.Parts[0].Text
	cleanedJSON := sanitizeJSONResponse(responseText)

	var draft gemini.ParsedDraft
	if err := json.Unmarshal([]byte(cleanedJSON), &draft); err != nil {
		uc.l.Errorf(ctx, "Failed to parse LLM response. Raw=%q Cleaned=%q", responseText, cleanedJSON)
		return model.ScheduledTask{}, fmt.Errorf("failed to parse LLM JSON response: %w", err)
	}

	return taskFromParsedDraft(now, draft)
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// taskFromParsedDraft validates a model draft and converts it into a task
// record, rejecting anything the local pipeline would not produce itself.
func taskFromParsedDraft(now time.Time, draft gemini.ParsedDraft) (model.ScheduledTask, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return model.ScheduledTask{}, fmt.Errorf("draft has empty title")
	}

	dueAt, err := time.Parse(time.RFC3339, draft.DueAtAbsolute)
	if err != nil {
		return model.ScheduledTask{}, fmt.Errorf("invalid due_at_absolute %q: %w", draft.DueAtAbsolute, err)
	}
	if !dueAt.After(now) {
		return model.ScheduledTask{}, fmt.Errorf("due_at_absolute %q is in the past", draft.DueAtAbsolute)
	}

	var days model.WeekdaySet
	for _, name := range draft.RecurrenceDays {
		wd, ok := datemath.Weekday(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return model.ScheduledTask{}, fmt.Errorf("unknown recurrence day %q", name)
		}
		days = days.Add(wd)
	}
	if !draft.IsRecurring && !days.IsEmpty() {
		return model.ScheduledTask{}, fmt.Errorf("recurrence days given for a one-time draft")
	}
	if draft.IsRecurring && days.IsEmpty() {
		days = model.AllWeek
	}

	freq := model.FrequencyOnce
	if draft.IsRecurring {
		if days == model.AllWeek {
			freq = model.FrequencyDaily
		} else {
			freq = model.FrequencyWeekly
		}
	}

	return model.ScheduledTask{
		Title:          title,
		DueAt:          dueAt.In(now.Location()),
		IsRecurring:    draft.IsRecurring,
		RecurrenceDays: days,
		Frequency:      freq,
		Priority:       parsePriority(draft.Priority),
	}, nil
}

func parsePriority(s string) model.Priority {
	switch model.Priority(strings.ToLower(strings.TrimSpace(s))) {
	case model.PriorityLow:
		return model.PriorityLow
	case model.PriorityHigh:
		return model.PriorityHigh
	default:
		return model.PriorityMedium
	}
}
