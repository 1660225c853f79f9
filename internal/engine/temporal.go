package engine

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"voicetask/pkg/datemath"
)

// TimeOfDay is a wall-clock time extracted from a transcript.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// DefaultTime is assigned by the parser when no time expression is found.
var DefaultTime = TimeOfDay{Hour: 12, Minute: 0}

// clockPatterns are tried in order; the first match wins and scanning stops.
var clockPatterns = []struct {
	re    *regexp.Regexp
	parse func(m []string) (TimeOfDay, bool)
}{
	{
		// "7:30", "7:30 pm", "12:05am"
		re: regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm)?\b`),
		parse: func(m []string) (TimeOfDay, bool) {
			return clockFrom(m[1], m[2], m[3])
		},
	},
	{
		// "7 pm", "11am"
		re: regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`),
		parse: func(m []string) (TimeOfDay, bool) {
			return clockFrom(m[1], "", m[2])
		},
	},
	{
		// "at 7", "by 18"
		re: regexp.MustCompile(`\b(?:at|by)\s+(\d{1,2})\b`),
		parse: func(m []string) (TimeOfDay, bool) {
			return clockFrom(m[1], "", "")
		},
	},
}

// keywordTimes maps spoken parts of day to fixed clock times. Ordered:
// "afternoon" must be checked before its substring "noon".
var keywordTimes = []struct {
	word string
	at   TimeOfDay
}{
	{"morning", TimeOfDay{9, 0}},
	{"afternoon", TimeOfDay{15, 0}},
	{"noon", TimeOfDay{12, 0}},
	{"evening", TimeOfDay{18, 0}},
	{"night", TimeOfDay{21, 0}},
}

// ExtractTime scans normalized text for a time-of-day expression.
// Explicit clock times take precedence over part-of-day keywords. The second
// return value is false when no expression was found; the caller is expected
// to apply DefaultTime in that case.
func ExtractTime(text string) (TimeOfDay, bool) {
	for _, p := range clockPatterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			if tod, ok := p.parse(m); ok {
				return tod, true
			}
		}
	}

	for _, kw := range keywordTimes {
		if strings.Contains(text, kw.word) {
			return kw.at, true
		}
	}

	return TimeOfDay{}, false
}

// clockFrom converts matched hour/minute/meridiem strings to a 24-hour
// TimeOfDay. Out-of-range values reject the match.
func clockFrom(hourStr, minuteStr, meridiem string) (TimeOfDay, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return TimeOfDay{}, false
	}

	minute := 0
	if minuteStr != "" {
		minute, err = strconv.Atoi(minuteStr)
		if err != nil || minute > 59 {
			return TimeOfDay{}, false
		}
	}

	switch meridiem {
	case "am":
		if hour < 1 || hour > 12 {
			return TimeOfDay{}, false
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return TimeOfDay{}, false
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour > 23 {
			return TimeOfDay{}, false
		}
	}

	return TimeOfDay{Hour: hour, Minute: minute}, true
}

// ExtractDateHint reports an explicit one-time date mentioned in the text.
// Currently only "tomorrow" is recognized; the returned hint is midnight of
// that calendar day in the parser's timezone.
func ExtractDateHint(p *datemath.Parser, now time.Time, text string) (time.Time, bool) {
	if strings.Contains(text, "tomorrow") {
		if day, err := p.Parse("tomorrow", now); err == nil {
			return day, true
		}
	}
	return time.Time{}, false
}

// spelledOrdinals maps spoken ordinal day words to day numbers. Compound
// forms come first so that "twenty-first" is not matched as "first".
var spelledOrdinals = []struct {
	word string
	day  int
}{
	{"twenty-first", 21}, {"twenty first", 21},
	{"twenty-second", 22}, {"twenty second", 22},
	{"twenty-third", 23}, {"twenty third", 23},
	{"twenty-fourth", 24}, {"twenty fourth", 24},
	{"twenty-fifth", 25}, {"twenty fifth", 25},
	{"twenty-sixth", 26}, {"twenty sixth", 26},
	{"twenty-seventh", 27}, {"twenty seventh", 27},
	{"twenty-eighth", 28}, {"twenty eighth", 28},
	{"twenty-ninth", 29}, {"twenty ninth", 29},
	{"thirty-first", 31}, {"thirty first", 31},
	{"thirtieth", 30},
	{"twentieth", 20},
	{"eleventh", 11},
	{"twelfth", 12},
	{"thirteenth", 13},
	{"fourteenth", 14},
	{"fifteenth", 15},
	{"sixteenth", 16},
	{"seventeenth", 17},
	{"eighteenth", 18},
	{"nineteenth", 19},
	{"first", 1},
	{"second", 2},
	{"third", 3},
	{"fourth", 4},
	{"fifth", 5},
	{"sixth", 6},
	{"seventh", 7},
	{"eighth", 8},
	{"ninth", 9},
	{"tenth", 10},
}

// numericOrdinalRe matches "20th", "the 3rd", "on the 1st", "of 22nd".
var numericOrdinalRe = regexp.MustCompile(`(?:\b(?:on the|of the|the|of)\s+)?\b(\d{1,2})(?:st|nd|rd|th)\b`)

// ExtractDayOfMonth finds a day-of-month mention in normalized text.
// Spelled ordinals are checked before the numeric pattern; the first match
// in scan order wins. Results outside 1..31 are rejected.
func ExtractDayOfMonth(text string) (int, bool) {
	for _, ord := range spelledOrdinals {
		if strings.Contains(text, ord.word) {
			return ord.day, true
		}
	}

	if m := numericOrdinalRe.FindStringSubmatch(text); m != nil {
		day, err := strconv.Atoi(m[1])
		if err == nil && day >= 1 && day <= 31 {
			return day, true
		}
	}

	return 0, false
}
