package gcalendar

import (
	"testing"
	"time"

	"voicetask/internal/model"
)

func TestRecurrenceRule(t *testing.T) {
	weekend := model.NewWeekdaySet(time.Saturday, time.Sunday)

	tests := []struct {
		name       string
		freq       model.Frequency
		days       model.WeekdaySet
		dayOfMonth int
		want       []string
	}{
		{name: "once", freq: model.FrequencyOnce, want: nil},
		{name: "daily", freq: model.FrequencyDaily, days: model.AllWeek, want: []string{"RRULE:FREQ=DAILY"}},
		{name: "weekly weekend", freq: model.FrequencyWeekly, days: weekend, want: []string{"RRULE:FREQ=WEEKLY;BYDAY=SU,SA"}},
		{name: "weekly no days", freq: model.FrequencyWeekly, want: []string{"RRULE:FREQ=WEEKLY"}},
		{name: "monthly on the 15th", freq: model.FrequencyMonthly, dayOfMonth: 15, want: []string{"RRULE:FREQ=MONTHLY;BYMONTHDAY=15"}},
		{name: "monthly without day", freq: model.FrequencyMonthly, want: []string{"RRULE:FREQ=MONTHLY"}},
		{name: "yearly", freq: model.FrequencyYearly, want: []string{"RRULE:FREQ=YEARLY"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecurrenceRule(tt.freq, tt.days, tt.dayOfMonth)
			if len(got) != len(tt.want) {
				t.Fatalf("RecurrenceRule() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("RecurrenceRule()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
