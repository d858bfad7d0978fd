package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/types"
)

func boolPtr(v bool) *bool { return &v }

func TestNormalizeAnswers(t *testing.T) {
	tests := []struct {
		name     string
		platform types.Platform
		answers  map[string]string
		expected types.CanonicalMetrics
	}{
		{
			name:     "instagram positive answers",
			platform: types.PlatformInstagram,
			answers: map[string]string{
				"instagram_feeling":    "Energized and positive",
				"instagram_boundaries": "I already take breaks regularly",
				"instagram_self_image": "Not really",
			},
			expected: types.CanonicalMetrics{Mood: 5, Stress: 1, Anxiety: false},
		},
		{
			name:     "instagram negative answers",
			platform: types.PlatformInstagram,
			answers: map[string]string{
				"instagram_feeling":    "Emotionally drained or overstimulated",
				"instagram_boundaries": "It's hard to step away",
				"instagram_self_image": "Yes, and I'm looking to understand this better",
			},
			expected: types.CanonicalMetrics{Mood: 1, Stress: 4, Anxiety: true},
		},
		{
			name:     "facebook frequent comparison flags anxiety",
			platform: types.PlatformFacebook,
			answers: map[string]string{
				"facebook_feeling":    "Connected and positive",
				"facebook_emotional":  "Not at all",
				"facebook_comparison": "Frequently",
			},
			expected: types.CanonicalMetrics{Mood: 5, Stress: 1, Anxiety: true},
		},
		{
			name:     "facebook occasional comparison does not",
			platform: types.PlatformFacebook,
			answers: map[string]string{
				"facebook_feeling":    "Anxious or left out",
				"facebook_emotional":  "Strongly",
				"facebook_comparison": "Occasionally",
			},
			expected: types.CanonicalMetrics{Mood: 1, Stress: 5, Anxiety: false},
		},
		{
			name:     "twitter arguments drive stress",
			platform: types.PlatformTwitter,
			answers: map[string]string{
				"twitter_feeling":   "Informed and curious",
				"twitter_arguments": "Yes, quite significantly",
				"twitter_pressure":  "Constantly",
			},
			expected: types.CanonicalMetrics{Mood: 5, Stress: 5, Anxiety: true},
		},
		{
			name:     "snapchat streak stress",
			platform: types.PlatformSnapchat,
			answers: map[string]string{
				"snapchat_emotional": "Mixed emotions",
				"snapchat_streaks":   "Stressed or anxious",
				"snapchat_fomo":      "Sometimes",
			},
			expected: types.CanonicalMetrics{Mood: 2, Stress: 4, Anxiety: true},
		},
		{
			name:     "youtube entertained maps to mood 4",
			platform: types.PlatformYouTube,
			answers: map[string]string{
				"youtube_feelings": "Entertained and relaxed",
				"youtube_balance":  "Fairly well",
				"youtube_sleep":    "Rarely",
			},
			expected: types.CanonicalMetrics{Mood: 4, Stress: 2, Anxiety: false},
		},
		{
			name:     "missing answers default to neutral",
			platform: types.PlatformInstagram,
			answers:  map[string]string{},
			expected: types.CanonicalMetrics{Mood: 3, Stress: 3, Anxiety: false},
		},
		{
			name:     "unrecognized option strings default to neutral",
			platform: types.PlatformInstagram,
			answers: map[string]string{
				"instagram_feeling":    "Something else entirely",
				"instagram_boundaries": "",
				"instagram_self_image": "Maybe",
			},
			expected: types.CanonicalMetrics{Mood: 3, Stress: 3, Anxiety: false},
		},
		{
			name:     "unknown platform defaults everything",
			platform: types.PlatformGeneral,
			answers: map[string]string{
				"instagram_feeling": "Energized and positive",
			},
			expected: types.CanonicalMetrics{Mood: 3, Stress: 3, Anxiety: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeAnswers(tt.platform, tt.answers)
			assert.Equal(t, tt.expected, result)
			assert.Nil(t, result.Sleep, "platform questionnaires never report sleep")
		})
	}
}

func TestNormalizeGeneral(t *testing.T) {
	tests := []struct {
		name     string
		mood     *int
		sleep    *int
		stress   *int
		anxiety  *bool
		expected types.CanonicalMetrics
	}{
		{
			name:     "all fields present",
			mood:     intPtr(4),
			sleep:    intPtr(2),
			stress:   intPtr(5),
			anxiety:  boolPtr(true),
			expected: types.CanonicalMetrics{Mood: 4, Sleep: intPtr(2), Stress: 5, Anxiety: true},
		},
		{
			name:     "nil fields take defaults, sleep stays absent",
			expected: types.CanonicalMetrics{Mood: 3, Sleep: nil, Stress: 3, Anxiety: false},
		},
		{
			name:     "values clamped onto the 1-5 scale",
			mood:     intPtr(9),
			sleep:    intPtr(0),
			stress:   intPtr(-2),
			expected: types.CanonicalMetrics{Mood: 5, Sleep: intPtr(1), Stress: 1, Anxiety: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeGeneral(tt.mood, tt.sleep, tt.stress, tt.anxiety)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseContentImpact(t *testing.T) {
	assert.Equal(t, types.ImpactPositive, ParseContentImpact("Positive"))
	assert.Equal(t, types.ImpactNeutral, ParseContentImpact("Neutral"))
	assert.Equal(t, types.ImpactNegative, ParseContentImpact("Negative"))
	assert.Equal(t, types.ContentImpact(""), ParseContentImpact("positive"))
	assert.Equal(t, types.ContentImpact(""), ParseContentImpact(""))
	assert.Equal(t, types.ContentImpact(""), ParseContentImpact("Great"))
}
