package engine

import (
	"time"

	"voicetask/internal/model"
	"voicetask/pkg/datemath"
)

// Resolve turns a parsed draft plus "now" into the concrete future due
// moment. Branches are evaluated top-down and the first applicable one wins:
// monthly, weekly on selected days, daily, explicit date hint, fallback
// tomorrow. The result is always strictly after now.
func Resolve(now time.Time, draft Draft) time.Time {
	rec := draft.Recurrence

	// Monthly takes precedence over any day-based pattern matched in the
	// same utterance.
	if rec.Monthly {
		day := rec.DayOfMonth
		if day == 0 {
			day = 1
		}
		due := datemath.AtClock(datemath.MonthDay(now, day), draft.Time.Hour, draft.Time.Minute)
		if !due.After(now) {
			due = datemath.AtClock(datemath.NextMonthDay(now, day), draft.Time.Hour, draft.Time.Minute)
		}
		return due
	}

	if !rec.Days.IsEmpty() && rec.Days != model.AllWeek {
		offset := 7
		for _, d := range rec.Days.Days() {
			if o := datemath.DaysUntilWeekday(now, d); o < offset {
				offset = o
			}
		}
		if offset == 0 && !datemath.AtClock(now, draft.Time.Hour, draft.Time.Minute).After(now) {
			// Today's slot already passed: roll a full week.
			offset = 7
		}
		return datemath.AtClock(now.AddDate(0, 0, offset), draft.Time.Hour, draft.Time.Minute)
	}

	// Daily resolves to tomorrow unconditionally, even when today's
	// time-of-day has not yet passed. The weekly branch above handles
	// same-day differently; the asymmetry is intentional.
	if rec.Days == model.AllWeek {
		return datemath.AtClock(now.AddDate(0, 0, 1), draft.Time.Hour, draft.Time.Minute)
	}

	if draft.HasDateHint {
		due := datemath.AtClock(draft.DateHint, draft.Time.Hour, draft.Time.Minute)
		if due.After(now) {
			return due
		}
	}

	return datemath.AtClock(now.AddDate(0, 0, 1), draft.Time.Hour, draft.Time.Minute)
}
