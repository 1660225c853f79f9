package engine

import (
	"testing"
	"time"

	"voicetask/pkg/datemath"
)

func TestExtractTime(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      TimeOfDay
		wantFound bool
	}{
		{"colon time with pm", "call mom at 7:30 pm", TimeOfDay{19, 30}, true},
		{"colon time with am", "standup 9:15am", TimeOfDay{9, 15}, true},
		{"colon time 12 am", "server check 12:05 am", TimeOfDay{0, 5}, true},
		{"colon time 12 pm", "lunch 12:30 pm", TimeOfDay{12, 30}, true},
		{"bare hour with pm", "gym at 6 pm", TimeOfDay{18, 0}, true},
		{"bare hour glued to am", "take medication at 8am", TimeOfDay{8, 0}, true},
		{"at hour no meridiem", "meet sam at 14", TimeOfDay{14, 0}, true},
		{"by hour", "submit report by 17", TimeOfDay{17, 0}, true},
		{"keyword morning", "water plants in the morning", TimeOfDay{9, 0}, true},
		{"keyword noon", "quick walk at noon", TimeOfDay{12, 0}, true},
		{"keyword afternoon beats noon substring", "review slides in the afternoon", TimeOfDay{15, 0}, true},
		{"keyword evening", "cook dinner this evening", TimeOfDay{18, 0}, true},
		{"keyword night", "read before night", TimeOfDay{21, 0}, true},
		{"clock wins over keyword", "tomorrow morning at 7:45 am", TimeOfDay{7, 45}, true},
		{"nothing found", "buy groceries", TimeOfDay{}, false},
		{"invalid minutes ignored", "odd note 7:75 somewhere", TimeOfDay{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractTime(Normalize(tt.text))
			if found != tt.wantFound {
				t.Fatalf("ExtractTime(%q) found = %v, want %v", tt.text, found, tt.wantFound)
			}
			if found && got != tt.want {
				t.Errorf("ExtractTime(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractDateHint(t *testing.T) {
	now := time.Date(2026, 3, 4, 16, 20, 0, 0, time.UTC) // Wednesday
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	hint, ok := ExtractDateHint(p, now, "finish slides tomorrow")
	if !ok {
		t.Fatalf("expected a date hint for 'tomorrow'")
	}
	if want := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC); !hint.Equal(want) {
		t.Errorf("hint = %v, want %v", hint, want)
	}

	if _, ok := ExtractDateHint(p, now, "finish slides soon"); ok {
		t.Errorf("expected no date hint without 'tomorrow'")
	}
}

func TestExtractDayOfMonth(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      int
		wantFound bool
	}{
		{"spelled simple", "pay rent on the first", 1, true},
		{"spelled teen", "insurance due the fifteenth", 15, true},
		{"spelled compound not its suffix", "report due the twenty-first", 21, true},
		{"spelled thirtieth", "review on the thirtieth", 30, true},
		{"numeric with the", "hvac bill on the 20th", 20, true},
		{"numeric bare", "3rd works too", 3, true},
		{"numeric out of range", "the 42nd is not a day", 0, false},
		{"no ordinal", "just a plain reminder", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractDayOfMonth(tt.text)
			if found != tt.wantFound {
				t.Fatalf("ExtractDayOfMonth(%q) found = %v, want %v", tt.text, found, tt.wantFound)
			}
			if got != tt.want {
				t.Errorf("ExtractDayOfMonth(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
