package model

import "time"

// UrgencyBand is a coarse bucket over the continuous urgency score,
// used for coloring and grouping.
type UrgencyBand string

const (
	BandCritical UrgencyBand = "critical"
	BandVeryHigh UrgencyBand = "very_high"
	BandHigh     UrgencyBand = "high"
	BandMedium   UrgencyBand = "medium"
	BandLow      UrgencyBand = "low"
	BandMinimal  UrgencyBand = "minimal"
)

// UrgencyScore is a derived ranking value for a task at a moment in time.
// It is recomputed on demand and never persisted.
type UrgencyScore struct {
	TaskID     string
	Value      float64
	Band       UrgencyBand
	ComputedAt time.Time
}
