package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/types"
)

func TestBuildRecord(t *testing.T) {
	assessor := NewAssessor(t.TempDir(), &stubCorpus{})

	t.Run("platform flow uses the answer tables", func(t *testing.T) {
		record := assessor.BuildRecord("user-1", &types.AssessRequest{
			Platform: "Instagram",
			Answers: map[string]string{
				"instagram_feeling":    "Energized and positive",
				"instagram_boundaries": "I already take breaks regularly",
				"instagram_self_image": "Not really",
			},
			PlatformTime:  "1-2 hours",
			ContentImpact: "Positive",
		})

		assert.NotEmpty(t, record.ID)
		assert.Equal(t, "user-1", record.UserID)
		assert.Equal(t, types.PlatformInstagram, record.Platform)
		assert.Equal(t, 5, record.Mood)
		assert.Nil(t, record.Sleep)
		assert.Equal(t, 1, record.Stress)
		assert.False(t, record.Anxiety)
		assert.Equal(t, "1-2 hours", record.PlatformTime)
		assert.Equal(t, types.ImpactPositive, record.ContentImpact)
		assert.Equal(t, 80, record.DeterministicScore)
	})

	t.Run("general flow uses numeric metrics", func(t *testing.T) {
		record := assessor.BuildRecord("user-2", &types.AssessRequest{
			Mood:    intPtr(1),
			Sleep:   intPtr(1),
			Stress:  intPtr(5),
			Anxiety: boolPtr(true),
		})

		assert.Equal(t, types.PlatformGeneral, record.Platform)
		assert.Equal(t, 18, record.DeterministicScore)
	})

	t.Run("case insensitive platform names", func(t *testing.T) {
		record := assessor.BuildRecord("user-3", &types.AssessRequest{
			Platform: "youtube",
			Answers:  map[string]string{"youtube_feelings": "Entertained and relaxed"},
		})
		assert.Equal(t, types.PlatformYouTube, record.Platform)
		assert.Equal(t, 4, record.Mood)
	})

	t.Run("empty request degrades to neutral defaults", func(t *testing.T) {
		record := assessor.BuildRecord("", &types.AssessRequest{})
		assert.Equal(t, 56, record.DeterministicScore)
	})

	t.Run("record IDs are unique", func(t *testing.T) {
		first := assessor.BuildRecord("user-4", &types.AssessRequest{})
		second := assessor.BuildRecord("user-4", &types.AssessRequest{})
		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestAssess(t *testing.T) {
	t.Run("falls back to deterministic with no corpus", func(t *testing.T) {
		assessor := NewAssessor(t.TempDir(), &stubCorpus{})
		record := assessor.BuildRecord("user-1", &types.AssessRequest{Mood: intPtr(4), Stress: intPtr(2)})

		score, source := assessor.Assess(record)
		assert.Equal(t, ScoreSourceDeterministic, source)
		assert.Equal(t, record.DeterministicScore, score)
		assert.Nil(t, record.ModelScore)
	})

	t.Run("uses the model once the corpus is large enough", func(t *testing.T) {
		assessor := NewAssessor(t.TempDir(), &stubCorpus{records: trainingRecords(8)})
		record := assessor.BuildRecord("user-1", &types.AssessRequest{
			Mood: intPtr(4), Sleep: intPtr(3), Stress: intPtr(2),
		})

		score, source := assessor.Assess(record)
		assert.Equal(t, ScoreSourceModel, source)
		require.NotNil(t, record.ModelScore)
		assert.Equal(t, *record.ModelScore, score)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	})
}
