package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/types"
)

func intPtr(v int) *int { return &v }

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		metrics  types.CanonicalMetrics
		expected int
	}{
		{
			name:     "best possible inputs",
			metrics:  types.CanonicalMetrics{Mood: 5, Sleep: intPtr(5), Stress: 1, Anxiety: false},
			expected: 92,
		},
		{
			name:     "worst possible inputs",
			metrics:  types.CanonicalMetrics{Mood: 1, Sleep: intPtr(1), Stress: 5, Anxiety: true},
			expected: 18,
		},
		{
			name:     "neutral inputs",
			metrics:  types.CanonicalMetrics{Mood: 3, Sleep: intPtr(3), Stress: 3, Anxiety: false},
			expected: 56,
		},
		{
			name:     "missing sleep defaults to 3",
			metrics:  types.CanonicalMetrics{Mood: 5, Sleep: nil, Stress: 1, Anxiety: false},
			expected: 80,
		},
		{
			name:     "anxiety removes the bonus",
			metrics:  types.CanonicalMetrics{Mood: 5, Sleep: nil, Stress: 1, Anxiety: true},
			expected: 78,
		},
		{
			name:     "out of range values are clamped",
			metrics:  types.CanonicalMetrics{Mood: 10, Sleep: intPtr(-3), Stress: 0, Anxiety: false},
			expected: 68,
		},
		{
			name:     "mixed mid-range inputs",
			metrics:  types.CanonicalMetrics{Mood: 4, Sleep: nil, Stress: 2, Anxiety: true},
			expected: 66,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.metrics))
		})
	}
}

func TestScoreDeterminism(t *testing.T) {
	m := types.CanonicalMetrics{Mood: 2, Sleep: intPtr(4), Stress: 3, Anxiety: true}
	first := Score(m)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Score(m))
	}
}

func TestScoreRange(t *testing.T) {
	// Score should stay within [0, 100] for every combination of inputs
	for mood := 1; mood <= 5; mood++ {
		for sleep := 1; sleep <= 5; sleep++ {
			for stress := 1; stress <= 5; stress++ {
				for _, anxiety := range []bool{false, true} {
					s := sleep
					score := Score(types.CanonicalMetrics{Mood: mood, Sleep: &s, Stress: stress, Anxiety: anxiety})
					assert.GreaterOrEqual(t, score, 0, "Score should be >= 0")
					assert.LessOrEqual(t, score, 100, "Score should be <= 100")
				}
			}
		}
	}
}

func TestScoreRecord(t *testing.T) {
	t.Run("nil record scores zero", func(t *testing.T) {
		assert.Equal(t, 0, ScoreRecord(nil))
	})

	t.Run("record delegates to metrics", func(t *testing.T) {
		rec := &types.ResponseRecord{Mood: 3, Stress: 3}
		assert.Equal(t, 56, ScoreRecord(rec))
	})
}
