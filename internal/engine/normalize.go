package engine

import "strings"

// Normalize lowercases a raw transcript and collapses internal whitespace.
// All downstream extractors operate on normalized text only.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
