package model

import "time"

// Priority is one of three ordinal priority levels.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Frequency classifies how often a task recurs. Derived once at creation
// from the recurrence pattern; FrequencyOnce for one-time tasks.
type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// WeekdaySet is a set of weekdays encoded as a bitmask (bit 0 = Sunday).
type WeekdaySet uint8

// AllWeek is the full Sunday..Saturday set.
const AllWeek WeekdaySet = 0x7F

// NewWeekdaySet builds a set from the given days.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.Add(d)
	}
	return s
}

// Add returns the set with d included.
func (s WeekdaySet) Add(d time.Weekday) WeekdaySet {
	return s | WeekdaySet(1<<uint(d))
}

// Contains reports whether d is in the set.
func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s&WeekdaySet(1<<uint(d)) != 0
}

// Union returns the union of s and other.
func (s WeekdaySet) Union(other WeekdaySet) WeekdaySet {
	return s | other
}

// IsEmpty reports whether no day is selected.
func (s WeekdaySet) IsEmpty() bool { return s == 0 }

// Count returns the number of selected days.
func (s WeekdaySet) Count() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			n++
		}
	}
	return n
}

// Days returns the selected weekdays in Sunday..Saturday order.
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// ScheduledTask is the canonical schedulable task record produced by the
// engine. After creation it is mutated only by completion, uncompletion and
// deletion; the due moment is never re-resolved.
//
// Invariant: RecurrenceDays.IsEmpty() == !IsRecurring for day-based
// recurrence. A monthly task is the documented exception: it recurs on a
// day of month, so IsRecurring is true while RecurrenceDays stays empty.
type ScheduledTask struct {
	ID             string
	UserID         string
	Title          string
	DueAt          time.Time
	IsRecurring    bool
	RecurrenceDays WeekdaySet
	DayOfMonth     int // 1..31 for monthly recurrence, 0 otherwise
	Frequency      Frequency
	Priority       Priority
	IsCompleted    bool
	CompletedAt    *time.Time
	CreatedAt      time.Time
}
