package engine

import (
	"strings"
	"time"

	"voicetask/internal/model"
)

// Recurrence is the classified repetition pattern of a transcript.
type Recurrence struct {
	IsRecurring bool
	Days        model.WeekdaySet
	Monthly     bool
	DayOfMonth  int // 1..31 when spoken, 0 when absent
}

// dayShortcuts expand a single phrase to a whole day set. Each rule is
// checked independently against the text; matches union together.
var dayShortcuts = []struct {
	phrase string
	days   model.WeekdaySet
}{
	{"every day", model.AllWeek},
	{"everyday", model.AllWeek},
	{"daily", model.AllWeek},
	{"every weekday", model.NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)},
	{"every weekend", model.NewWeekdaySet(time.Saturday, time.Sunday)},
}

var weekdayWords = []struct {
	word string
	day  time.Weekday
}{
	{"sunday", time.Sunday},
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
}

var monthlyWords = []string{"every month", "monthly"}

// ClassifyRecurrence detects whether the normalized text describes a
// repeating task and on which days. Rules are not mutually exclusive: a
// transcript matching both weekly and monthly cues sets both, and the
// resolver gives monthly precedence.
func ClassifyRecurrence(text string) Recurrence {
	var rec Recurrence

	for _, rule := range dayShortcuts {
		if strings.Contains(text, rule.phrase) {
			rec.Days = rec.Days.Union(rule.days)
		}
	}

	for _, w := range weekdayWords {
		if strings.Contains(text, w.word) {
			rec.Days = rec.Days.Add(w.day)
		}
	}

	for _, w := range monthlyWords {
		if strings.Contains(text, w) {
			rec.Monthly = true
			if day, ok := ExtractDayOfMonth(text); ok {
				rec.DayOfMonth = day
			}
			break
		}
	}

	// A bare "every" still marks the task recurring even when no day
	// keyword filled the set.
	if strings.Contains(text, "every") || strings.Contains(text, "daily") || rec.Monthly {
		rec.IsRecurring = true
	}

	return rec
}

// Frequency derives the scoring frequency class from the pattern.
// Monthly wins over any day-based match.
func (r Recurrence) Frequency() model.Frequency {
	switch {
	case r.Monthly:
		return model.FrequencyMonthly
	case r.Days == model.AllWeek:
		return model.FrequencyDaily
	case !r.Days.IsEmpty():
		return model.FrequencyWeekly
	case r.IsRecurring:
		return model.FrequencyWeekly
	default:
		return model.FrequencyOnce
	}
}
