package gemini

import "fmt"

const draftPromptTemplate = `You convert one spoken reminder transcript into a single structured task draft.

Current time: %s

Transcript:
%s

Respond with ONLY a JSON object, no prose, matching exactly:
{
  "title": "short task name, at most 3 words",
  "due_at_absolute": "RFC3339 timestamp strictly in the future",
  "is_recurring": false,
  "recurrence_days": ["monday"],
  "priority": "low|medium|high"
}

Rules:
- recurrence_days contains lowercase English weekday names, empty when is_recurring is false.
- When no time is spoken, use 12:00 local time.
- When no date is spoken, use tomorrow.`

// BuildDraftPrompt renders the task-draft extraction prompt for one
// transcript, anchored at the given RFC3339 timestamp.
func BuildDraftPrompt(transcript, nowRFC3339 string) string {
	return fmt.Sprintf(draftPromptTemplate, nowRFC3339, transcript)
}
