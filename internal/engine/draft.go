package engine

import (
	"errors"
	"time"

	"voicetask/internal/model"
	"voicetask/pkg/datemath"
)

// ErrNoSpeech is returned when a transcript contains no usable text.
var ErrNoSpeech = errors.New("no speech detected")

// Draft is the transient intermediate record produced by parsing one
// transcript. It is never persisted; the usecase layer assembles it into a
// model.ScheduledTask.
type Draft struct {
	TitleCandidate string
	Time           TimeOfDay
	TimeSpecified  bool
	DateHint       time.Time
	HasDateHint    bool
	Recurrence     Recurrence
	Priority       model.Priority
}

// Frequency derives the scoring frequency class for the draft.
func (d Draft) Frequency() model.Frequency {
	return d.Recurrence.Frequency()
}

// ParseTranscript runs the full local parsing pipeline on a raw transcript:
// normalize, extract time and date hints, classify recurrence and priority,
// distill the title. Date words resolve through p, in its timezone. Parsing
// is pure: the same (now, text) pair always produces the same draft. It
// never blocks task creation on ambiguity; the only error is an empty
// transcript.
func ParseTranscript(p *datemath.Parser, now time.Time, text string) (Draft, error) {
	normalized := Normalize(text)
	if normalized == "" {
		return Draft{}, ErrNoSpeech
	}

	draft := Draft{
		TitleCandidate: DistillTitle(normalized),
		Recurrence:     ClassifyRecurrence(normalized),
		Priority:       ClassifyPriority(normalized),
	}

	if tod, ok := ExtractTime(normalized); ok {
		draft.Time = tod
		draft.TimeSpecified = true
	} else {
		draft.Time = DefaultTime
	}

	if hint, ok := ExtractDateHint(p, now, normalized); ok {
		draft.DateHint = hint
		draft.HasDateHint = true
	}

	return draft, nil
}
