package urgency

import (
	"time"

	"voicetask/internal/model"
)

// The scoring formula lives here and only here. Every view (ranked list,
// danger zone, coloring) consumes this one function instead of re-deriving
// the multiplier bands per call site.

var basePriorityScores = map[model.Priority]float64{
	model.PriorityHigh:   100,
	model.PriorityMedium: 60,
	model.PriorityLow:    30,
}

const unknownPriorityScore = 50

var frequencyWeights = map[model.Frequency]float64{
	model.FrequencyDaily:   0.7,
	model.FrequencyWeekly:  1.0,
	model.FrequencyMonthly: 1.3,
	model.FrequencyYearly:  1.5,
	model.FrequencyOnce:    1.4,
}

// noDueMultiplier applies when a task has no due moment at all. Rarely
// reached: drafts always receive a default due time.
const noDueMultiplier = 0.5

// bandThresholds maps score floors to bands, highest first.
var bandThresholds = []struct {
	floor float64
	band  model.UrgencyBand
}{
	{800, model.BandCritical},
	{500, model.BandVeryHigh},
	{300, model.BandHigh},
	{150, model.BandMedium},
	{50, model.BandLow},
}

// Score computes the urgency value for a task with the given priority,
// recurrence frequency and seconds remaining until due. Pure and
// idempotent: identical inputs always produce identical output.
func Score(priority model.Priority, freq model.Frequency, secondsRemaining float64) float64 {
	return baseScore(priority) * weight(freq) * multiplier(secondsRemaining)
}

func baseScore(priority model.Priority) float64 {
	if s, ok := basePriorityScores[priority]; ok {
		return s
	}
	return unknownPriorityScore
}

func weight(freq model.Frequency) float64 {
	if w, ok := frequencyWeights[freq]; ok {
		return w
	}
	return 1.0
}

// multiplier is the piecewise urgency curve over minutes remaining.
// Overdue tasks grow linearly with how late they are, capped at +20.
func multiplier(secondsRemaining float64) float64 {
	m := secondsRemaining / 60

	switch {
	case m < 0:
		over := -m / 10
		if over > 20 {
			over = 20
		}
		return 10 + over
	case m < 5:
		return 8.0
	case m < 15:
		return 5.0
	case m < 30:
		return 3.5
	case m < 60:
		return 2.5
	case m < 120:
		return 1.8
	case m < 240:
		return 1.4
	case m < 1440:
		return 1.1
	default:
		return 1.0
	}
}

// BandFor buckets a continuous score into its display band.
func BandFor(score float64) model.UrgencyBand {
	for _, t := range bandThresholds {
		if score >= t.floor {
			return t.band
		}
	}
	return model.BandMinimal
}

// Evaluate computes the full derived urgency record for a task at now.
func Evaluate(task model.ScheduledTask, now time.Time) model.UrgencyScore {
	var value float64
	if task.DueAt.IsZero() {
		value = baseScore(task.Priority) * weight(task.Frequency) * noDueMultiplier
	} else {
		value = Score(task.Priority, task.Frequency, task.DueAt.Sub(now).Seconds())
	}

	return model.UrgencyScore{
		TaskID:     task.ID,
		Value:      value,
		Band:       BandFor(value),
		ComputedAt: now,
	}
}
