package datemath

import "time"

// AtClock returns the instant on t's calendar day at the given wall clock,
// in t's location.
func AtClock(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

// DaysUntilWeekday returns the smallest non-negative day offset from `from`
// to the target weekday, modulo 7. Zero means `from` already falls on target.
func DaysUntilWeekday(from time.Time, target time.Weekday) int {
	diff := int(target) - int(from.Weekday())
	if diff < 0 {
		diff += 7
	}
	return diff
}

// MonthDay returns midnight of the given day number in t's month and location.
// Day numbers past the end of the month normalize forward per time.Date.
func MonthDay(t time.Time, day int) time.Time {
	return time.Date(t.Year(), t.Month(), day, 0, 0, 0, 0, t.Location())
}

// NextMonthDay returns midnight of the given day number in the month after
// t's month, in t's location.
func NextMonthDay(t time.Time, day int) time.Time {
	return time.Date(t.Year(), t.Month()+1, day, 0, 0, 0, 0, t.Location())
}
