package engine

import (
	"strings"

	"voicetask/internal/model"
)

// Priority keyword tables. Ordered, first containment match wins, and the
// low table is checked strictly before the high table: a word appearing in
// both resolves to low. This ordering is part of the classification
// contract, not an implementation detail.
var (
	lowPriorityKeywords = []string{
		"brush",
		"shower",
		"tv",
		"television",
		"meditate",
		"meditation",
		"water plant",
		"water the plant",
		"laundry",
		"dishes",
		"tidy",
		"walk the dog",
		"stretch",
		"journal",
	}

	highPriorityKeywords = []string{
		"doctor",
		"dentist",
		"medication",
		"medicine",
		"pill",
		"prescription",
		"pay rent",
		"rent",
		"bill",
		"tax",
		"insurance",
		"deadline",
		"appointment",
		"interview",
		"exam",
		"urgent",
	}
)

// ClassifyPriority assigns one of three levels by ordered keyword lookup
// over the normalized text. It never fails; the default is medium.
func ClassifyPriority(text string) model.Priority {
	for _, kw := range lowPriorityKeywords {
		if strings.Contains(text, kw) {
			return model.PriorityLow
		}
	}

	for _, kw := range highPriorityKeywords {
		if strings.Contains(text, kw) {
			return model.PriorityHigh
		}
	}

	return model.PriorityMedium
}
