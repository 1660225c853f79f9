package engine

import (
	"errors"
	"testing"
	"time"

	"voicetask/internal/model"
	"voicetask/pkg/datemath"
)

func TestParseTranscript(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC) // Wednesday
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	t.Run("full recurring utterance", func(t *testing.T) {
		draft, err := ParseTranscript(p, now, "Call mom every Sunday")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if draft.TitleCandidate != "Call Mom" {
			t.Errorf("title = %q, want %q", draft.TitleCandidate, "Call Mom")
		}
		if !draft.Recurrence.IsRecurring {
			t.Errorf("expected recurring draft")
		}
		if draft.Recurrence.Days != model.NewWeekdaySet(time.Sunday) {
			t.Errorf("days = %v, want Sunday only", draft.Recurrence.Days.Days())
		}
		if draft.Priority != model.PriorityMedium {
			t.Errorf("priority = %v, want medium", draft.Priority)
		}
		if draft.TimeSpecified {
			t.Errorf("no time was spoken, TimeSpecified should be false")
		}
		if draft.Time != DefaultTime {
			t.Errorf("time = %+v, want default %+v", draft.Time, DefaultTime)
		}

		due := Resolve(now, draft)
		want := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC) // next Sunday at noon
		if !due.Equal(want) {
			t.Errorf("due = %v, want %v", due, want)
		}
	})

	t.Run("explicit clock time", func(t *testing.T) {
		draft, err := ParseTranscript(p, now, "Take medication at 8:00 pm every day")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !draft.TimeSpecified || draft.Time != (TimeOfDay{20, 0}) {
			t.Errorf("time = %+v specified=%v, want 20:00 specified", draft.Time, draft.TimeSpecified)
		}
		if draft.Priority != model.PriorityHigh {
			t.Errorf("priority = %v, want high", draft.Priority)
		}
		if draft.Frequency() != model.FrequencyDaily {
			t.Errorf("frequency = %v, want daily", draft.Frequency())
		}
	})

	t.Run("tomorrow hint", func(t *testing.T) {
		draft, err := ParseTranscript(p, now, "Submit the expense report tomorrow")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !draft.HasDateHint {
			t.Fatalf("expected a date hint")
		}
		due := Resolve(now, draft)
		want := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
		if !due.Equal(want) {
			t.Errorf("due = %v, want %v", due, want)
		}
	})

	t.Run("empty transcript", func(t *testing.T) {
		_, err := ParseTranscript(p, now, "   ")
		if !errors.Is(err, ErrNoSpeech) {
			t.Errorf("err = %v, want ErrNoSpeech", err)
		}
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		a, _ := ParseTranscript(p, now, "water plants every weekend at 9am")
		b, _ := ParseTranscript(p, now, "water plants every weekend at 9am")
		if a != b {
			t.Errorf("same input produced different drafts: %+v vs %+v", a, b)
		}
	})
}
