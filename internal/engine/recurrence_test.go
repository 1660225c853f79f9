package engine

import (
	"testing"
	"time"

	"voicetask/internal/model"
)

func TestClassifyRecurrence(t *testing.T) {
	weekdays := model.NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
	weekend := model.NewWeekdaySet(time.Saturday, time.Sunday)

	tests := []struct {
		name string
		text string
		want Recurrence
	}{
		{
			name: "every day",
			text: "brush teeth every day",
			want: Recurrence{IsRecurring: true, Days: model.AllWeek},
		},
		{
			name: "daily",
			text: "meditate daily",
			want: Recurrence{IsRecurring: true, Days: model.AllWeek},
		},
		{
			name: "everyday one word",
			text: "stretch everyday",
			want: Recurrence{IsRecurring: true, Days: model.AllWeek},
		},
		{
			name: "every weekday",
			text: "standup every weekday",
			want: Recurrence{IsRecurring: true, Days: weekdays},
		},
		{
			name: "every weekend",
			text: "mow the lawn every weekend",
			want: Recurrence{IsRecurring: true, Days: weekend},
		},
		{
			name: "single weekday",
			text: "call mom every sunday",
			want: Recurrence{IsRecurring: true, Days: model.NewWeekdaySet(time.Sunday)},
		},
		{
			name: "multiple weekday names union",
			text: "gym every monday and thursday",
			want: Recurrence{IsRecurring: true, Days: model.NewWeekdaySet(time.Monday, time.Thursday)},
		},
		{
			name: "weekday name without every is not recurring",
			text: "call mom sunday",
			want: Recurrence{IsRecurring: false, Days: model.NewWeekdaySet(time.Sunday)},
		},
		{
			name: "monthly with day of month",
			text: "pay the hvac bill every month on the 20th",
			want: Recurrence{IsRecurring: true, Monthly: true, DayOfMonth: 20},
		},
		{
			name: "monthly keyword without day",
			text: "review subscriptions monthly",
			want: Recurrence{IsRecurring: true, Monthly: true},
		},
		{
			name: "bare every with no day keyword",
			text: "do this every so often",
			want: Recurrence{IsRecurring: true},
		},
		{
			name: "monthly and weekly cues both set",
			text: "report every friday and every month",
			want: Recurrence{IsRecurring: true, Days: model.NewWeekdaySet(time.Friday), Monthly: true},
		},
		{
			name: "no trigger",
			text: "finish the report",
			want: Recurrence{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyRecurrence(tt.text)
			if got != tt.want {
				t.Errorf("ClassifyRecurrence(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestRecurrenceFrequency(t *testing.T) {
	tests := []struct {
		name string
		rec  Recurrence
		want model.Frequency
	}{
		{"monthly wins over days", Recurrence{IsRecurring: true, Monthly: true, Days: model.AllWeek}, model.FrequencyMonthly},
		{"all seven days is daily", Recurrence{IsRecurring: true, Days: model.AllWeek}, model.FrequencyDaily},
		{"subset is weekly", Recurrence{IsRecurring: true, Days: model.NewWeekdaySet(time.Tuesday)}, model.FrequencyWeekly},
		{"bare recurring is weekly", Recurrence{IsRecurring: true}, model.FrequencyWeekly},
		{"not recurring is once", Recurrence{}, model.FrequencyOnce},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.Frequency(); got != tt.want {
				t.Errorf("Frequency() = %v, want %v", got, tt.want)
			}
		})
	}
}
