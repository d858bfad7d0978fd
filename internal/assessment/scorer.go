package assessment

import (
	"math"

	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/types"
)

// Wellbeing formula weights. They sum to 1.0 over the 5-point scale; stress
// is inverted before weighting so that higher always means better.
const (
	moodWeight    = 0.4
	sleepWeight   = 0.3
	stressWeight  = 0.2
	anxietyWeight = 0.1

	defaultSleep = 3
)

// Score computes the deterministic 0-100 wellbeing score. It is a total
// function: out-of-range inputs are clamped, missing sleep defaults to 3,
// and identical inputs always produce identical output.
func Score(m types.CanonicalMetrics) int {
	mood := clampLevel(m.Mood)
	stress := clampLevel(m.Stress)

	sleep := defaultSleep
	if m.Sleep != nil {
		sleep = clampLevel(*m.Sleep)
	}

	anxietyBonus := 1.0
	if m.Anxiety {
		anxietyBonus = 0.0
	}

	raw := float64(mood)*moodWeight +
		float64(sleep)*sleepWeight +
		float64(6-stress)*stressWeight +
		anxietyBonus*anxietyWeight

	return int(math.Round(raw / 5.0 * 100.0))
}

// ScoreRecord computes the deterministic score for a full response record.
func ScoreRecord(r *types.ResponseRecord) int {
	if r == nil {
		return 0
	}
	return Score(r.Metrics())
}
