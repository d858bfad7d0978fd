package assessment

import (
	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/types"
)

// Neutral defaults applied whenever an answer is missing or its option string
// is not in the platform's lookup table. Normalization must never fail.
const (
	defaultMood   = 3
	defaultStress = 3
)

// metricTable holds one platform's hand-authored answer mappings: which
// question carries mood, which carries stress, which carries anxiety, and
// the per-option values for each.
type metricTable struct {
	moodKey    string
	mood       map[string]int
	stressKey  string
	stress     map[string]int
	anxietyKey string
	anxiety    map[string]bool
}

var platformTables = map[types.Platform]metricTable{
	types.PlatformInstagram: {
		moodKey: "instagram_feeling",
		mood: map[string]int{
			"Energized and positive":                5,
			"Neutral":                               3,
			"Slightly distracted":                   2,
			"Emotionally drained or overstimulated": 1,
		},
		stressKey: "instagram_boundaries",
		stress: map[string]int{
			"I already take breaks regularly":           1,
			"I've considered it but haven't started":    3,
			"It's hard to step away":                    4,
			"I'd like help creating healthy boundaries": 3,
		},
		anxietyKey: "instagram_self_image",
		anxiety: map[string]bool{
			"Not really": false,
			"Sometimes I feel inspired, other times unsure":  false,
			"Yes, I've reflected more on how I view myself":  false,
			"Yes, and I'm looking to understand this better": true,
		},
	},
	types.PlatformFacebook: {
		moodKey: "facebook_feeling",
		mood: map[string]int{
			"Connected and positive":             5,
			"Neutral":                            3,
			"Slightly distracted or overwhelmed": 2,
			"Anxious or left out":                1,
		},
		stressKey: "facebook_emotional",
		stress: map[string]int{
			"Not at all": 1,
			"Slightly":   2,
			"Often":      4,
			"Strongly":   5,
		},
		anxietyKey: "facebook_comparison",
		anxiety: map[string]bool{
			"Not at all":    false,
			"Occasionally":  false,
			"Frequently":    true,
			"Almost always": true,
		},
	},
	types.PlatformTwitter: {
		moodKey: "twitter_feeling",
		mood: map[string]int{
			"Informed and curious":          5,
			"Neutral or unaffected":         3,
			"A bit overwhelmed or reactive": 2,
			"Emotionally unsettled":         1,
		},
		stressKey: "twitter_arguments",
		stress: map[string]int{
			"Not at all":                    1,
			"Occasionally":                  2,
			"Yes, they sometimes affect me": 4,
			"Yes, quite significantly":      5,
		},
		anxietyKey: "twitter_pressure",
		anxiety: map[string]bool{
			"No pressure at all": false,
			"Mild pressure":      false,
			"Quite often":        true,
			"Constantly":         true,
		},
	},
	types.PlatformSnapchat: {
		moodKey: "snapchat_emotional",
		mood: map[string]int{
			"I feel happy and connected":    5,
			"Neutral":                       3,
			"Mixed emotions":                2,
			"Emotionally drained sometimes": 1,
		},
		stressKey: "snapchat_streaks",
		stress: map[string]int{
			"Unaffected":          1,
			"Slightly concerned":  2,
			"Stressed or anxious": 4,
			"Upset or emotional":  5,
		},
		anxietyKey: "snapchat_fomo",
		anxiety: map[string]bool{
			"Never":     false,
			"Rarely":    false,
			"Sometimes": true,
			"Often":     true,
		},
	},
	types.PlatformYouTube: {
		moodKey: "youtube_feelings",
		mood: map[string]int{
			"Informed or inspired":        5,
			"Entertained and relaxed":     4,
			"Sometimes distracted":        2,
			"Often like I've wasted time": 1,
		},
		stressKey: "youtube_balance",
		stress: map[string]int{
			"Very well - it's just one of many activities": 1,
			"Fairly well":     2,
			"Could be better": 3,
			"It often takes priority over other things": 5,
		},
		anxietyKey: "youtube_sleep",
		anxiety: map[string]bool{
			"Never":     false,
			"Rarely":    false,
			"Sometimes": true,
			"Often":     true,
		},
	},
}

// NormalizeAnswers converts a platform questionnaire's categorical answers
// into canonical metrics. Unrecognized platforms and unrecognized option
// strings all fall back to neutral defaults; this function is total.
func NormalizeAnswers(platform types.Platform, answers map[string]string) types.CanonicalMetrics {
	m := types.CanonicalMetrics{
		Mood:    defaultMood,
		Stress:  defaultStress,
		Anxiety: false,
	}

	table, ok := platformTables[platform]
	if !ok {
		return m
	}

	if answer, ok := answers[table.moodKey]; ok {
		if v, ok := table.mood[answer]; ok {
			m.Mood = v
		}
	}
	if answer, ok := answers[table.stressKey]; ok {
		if v, ok := table.stress[answer]; ok {
			m.Stress = v
		}
	}
	if answer, ok := answers[table.anxietyKey]; ok {
		if v, ok := table.anxiety[answer]; ok {
			m.Anxiety = v
		}
	}

	return m
}

// NormalizeGeneral builds canonical metrics from the general check-in's
// direct numeric answers, clamping everything to the 1-5 scale. Nil fields
// take the neutral defaults; sleep stays absent when not reported.
func NormalizeGeneral(mood, sleep, stress *int, anxiety *bool) types.CanonicalMetrics {
	m := types.CanonicalMetrics{
		Mood:    defaultMood,
		Stress:  defaultStress,
		Anxiety: false,
	}

	if mood != nil {
		m.Mood = clampLevel(*mood)
	}
	if sleep != nil {
		v := clampLevel(*sleep)
		m.Sleep = &v
	}
	if stress != nil {
		m.Stress = clampLevel(*stress)
	}
	if anxiety != nil {
		m.Anxiety = *anxiety
	}

	return m
}

// ParseContentImpact validates the free-form impact string; anything
// unrecognized is treated as absent.
func ParseContentImpact(s string) types.ContentImpact {
	switch types.ContentImpact(s) {
	case types.ImpactPositive, types.ImpactNeutral, types.ImpactNegative:
		return types.ContentImpact(s)
	default:
		return ""
	}
}

// clampLevel coerces a value onto the 1-5 questionnaire scale.
func clampLevel(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}
