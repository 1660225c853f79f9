package engine

import (
	"regexp"
	"strings"
	"unicode"
)

// titleStopWords are dropped from title candidates: articles/prepositions,
// calendar vocabulary, meridiems, ordinal words and recurrence keywords.
var titleStopWords = buildStopWords()

func buildStopWords() map[string]struct{} {
	words := []string{
		// articles and prepositions
		"a", "an", "the", "at", "by", "on", "in", "to", "of", "for",
		// weekdays
		"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
		// months
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
		// meridiems and day parts
		"am", "pm", "morning", "noon", "afternoon", "evening", "night",
		// recurrence vocabulary and calendar units
		"every", "everyday", "daily", "weekly", "monthly", "weekday", "weekend",
		"day", "days", "week", "weeks", "month", "months", "year", "years",
		"tomorrow", "today",
	}

	set := make(map[string]struct{}, len(words)+len(spelledOrdinals))
	for _, w := range words {
		set[w] = struct{}{}
	}
	for _, ord := range spelledOrdinals {
		set[ord.word] = struct{}{}
	}
	return set
}

// minimalStopWords is the fallback set used when stop-word stripping
// removes everything.
var minimalStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "by": {}, "at": {}, "on": {}, "in": {}, "to": {}, "every": {},
}

var (
	pureDigitsRe    = regexp.MustCompile(`^\d{3,4}$`)
	numericOrdTok   = regexp.MustCompile(`^\d{1,2}(?:st|nd|rd|th)$`)
	clockSuffixTok  = regexp.MustCompile(`^\d{1,2}(?:am|pm)$`)
	tokenTrimCutset = ".,!?;"
)

// isTimeLiteral reports whether a token is a pure time value: a clock form
// with a separator, a 3-4 digit number, or a digit+meridiem like "8am".
func isTimeLiteral(tok string) bool {
	if strings.ContainsAny(tok, ":.") && strings.IndexFunc(tok, unicode.IsDigit) >= 0 {
		return true
	}
	return pureDigitsRe.MatchString(tok) || clockSuffixTok.MatchString(tok)
}

// DistillTitle produces the short canonical task name from normalized text:
// time literals and stop words are removed, the first three surviving tokens
// are kept in order and capitalized, joined with single spaces.
func DistillTitle(text string) string {
	tokens := tokenize(text)

	kept := make([]string, 0, 3)
	for _, tok := range tokens {
		if isTimeLiteral(tok) || numericOrdTok.MatchString(tok) {
			continue
		}
		if _, stop := titleStopWords[tok]; stop {
			continue
		}
		kept = append(kept, capitalize(tok))
		if len(kept) == 3 {
			break
		}
	}

	if len(kept) > 0 {
		return strings.Join(kept, " ")
	}

	// Everything was stripped: fall back to the first original token
	// outside the minimal stop set.
	for _, tok := range tokens {
		if _, stop := minimalStopWords[tok]; !stop {
			return capitalize(tok)
		}
	}

	return "Task"
}

func tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, tokenTrimCutset)
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func capitalize(tok string) string {
	if tok == "" {
		return tok
	}
	runes := []rune(strings.ToLower(tok))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
