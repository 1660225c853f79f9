package gcalendar

import (
	"fmt"
	"strings"
	"time"

	"voicetask/internal/model"
)

var bydayCodes = map[time.Weekday]string{
	time.Sunday:    "SU",
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
}

// RecurrenceRule converts a task's repeat schedule into Google Calendar
// RRULE lines. One-time tasks return nil.
func RecurrenceRule(freq model.Frequency, days model.WeekdaySet, dayOfMonth int) []string {
	switch freq {
	case model.FrequencyDaily:
		return []string{"RRULE:FREQ=DAILY"}
	case model.FrequencyWeekly:
		if days.IsEmpty() {
			return []string{"RRULE:FREQ=WEEKLY"}
		}
		codes := make([]string, 0, days.Count())
		for _, d := range days.Days() {
			codes = append(codes, bydayCodes[d])
		}
		return []string{fmt.Sprintf("RRULE:FREQ=WEEKLY;BYDAY=%s", strings.Join(codes, ","))}
	case model.FrequencyMonthly:
		if dayOfMonth >= 1 && dayOfMonth <= 31 {
			return []string{fmt.Sprintf("RRULE:FREQ=MONTHLY;BYMONTHDAY=%d", dayOfMonth)}
		}
		return []string{"RRULE:FREQ=MONTHLY"}
	case model.FrequencyYearly:
		return []string{"RRULE:FREQ=YEARLY"}
	default:
		return nil
	}
}
