package types

import (
	"strings"
	"time"
)

// Platform identifies which social media questionnaire produced a response.
type Platform string

const (
	PlatformGeneral   Platform = ""
	PlatformInstagram Platform = "Instagram"
	PlatformFacebook  Platform = "Facebook"
	PlatformTwitter   Platform = "Twitter"
	PlatformSnapchat  Platform = "Snapchat"
	PlatformYouTube   Platform = "YouTube"
)

// KnownPlatforms lists every platform with its own questionnaire and catalog.
var KnownPlatforms = []Platform{
	PlatformInstagram,
	PlatformFacebook,
	PlatformTwitter,
	PlatformSnapchat,
	PlatformYouTube,
}

// ParsePlatform maps a user-supplied platform name onto a known platform.
// Unrecognized values collapse to PlatformGeneral so downstream logic can
// always fall back to the general flow.
func ParsePlatform(s string) Platform {
	for _, p := range KnownPlatforms {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p
		}
	}
	return PlatformGeneral
}

// IsKnown reports whether the platform has a dedicated questionnaire.
func (p Platform) IsKnown() bool {
	return p != PlatformGeneral
}

// ContentImpact captures the user's self-reported effect of the content they consume.
type ContentImpact string

const (
	ImpactPositive ContentImpact = "Positive"
	ImpactNeutral  ContentImpact = "Neutral"
	ImpactNegative ContentImpact = "Negative"
)

// CanonicalMetrics are the normalized wellbeing fields every scorer and
// encoder operates on. Sleep is optional: the platform questionnaires never
// ask about it, only the general check-in does.
type CanonicalMetrics struct {
	Mood    int  `json:"mood"`
	Sleep   *int `json:"sleep,omitempty"`
	Stress  int  `json:"stress"`
	Anxiety bool `json:"anxiety"`
}

// ResponseRecord is a single completed check-in. Optional fields use
// pointer/empty-value presence so defaulting happens in exactly one place
// (the scorer and encoder), not at every read site.
type ResponseRecord struct {
	ID                 string        `json:"id"`
	UserID             string        `json:"user_id"`
	Timestamp          time.Time     `json:"timestamp"`
	Platform           Platform      `json:"platform,omitempty"`
	Mood               int           `json:"mood"`
	Sleep              *int          `json:"sleep,omitempty"`
	Stress             int           `json:"stress"`
	Anxiety            bool          `json:"anxiety"`
	PlatformTime       string        `json:"platform_time,omitempty"`
	ContentImpact      ContentImpact `json:"content_impact,omitempty"`
	Notes              string        `json:"notes,omitempty"`
	DeterministicScore int           `json:"deterministic_score"`
	ModelScore         *int          `json:"model_score,omitempty"`
}

// Metrics extracts the canonical metrics view of the record.
func (r *ResponseRecord) Metrics() CanonicalMetrics {
	return CanonicalMetrics{
		Mood:    r.Mood,
		Sleep:   r.Sleep,
		Stress:  r.Stress,
		Anxiety: r.Anxiety,
	}
}

// DisplayScore returns the model score when one was predicted, the
// deterministic score otherwise.
func (r *ResponseRecord) DisplayScore() int {
	if r.ModelScore != nil {
		return *r.ModelScore
	}
	return r.DeterministicScore
}

// Suggestion is a single wellness tip shown to the user.
type Suggestion struct {
	Title       string `json:"title"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// Quote is a motivational quote served alongside results.
type Quote struct {
	Text   string `json:"quote"`
	Author string `json:"author"`
}

// AssessRequest is the submission payload for a check-in. Platform flows
// carry their categorical answers; the general flow carries the numeric
// metrics directly.
type AssessRequest struct {
	Platform      string            `json:"platform,omitempty"`
	Answers       map[string]string `json:"answers,omitempty"`
	Mood          *int              `json:"mood,omitempty"`
	Sleep         *int              `json:"sleep,omitempty"`
	Stress        *int              `json:"stress,omitempty"`
	Anxiety       *bool             `json:"anxiety,omitempty"`
	PlatformTime  string            `json:"platform_time,omitempty"`
	ContentImpact string            `json:"content_impact,omitempty"`
	Notes         string            `json:"notes,omitempty"`
}

// AssessResponse is returned from a check-in submission. Notice carries a
// soft warning when the record could not be saved to history; the scores are
// still valid.
type AssessResponse struct {
	Record      *ResponseRecord `json:"record"`
	Score       int             `json:"score"`
	ScoreSource string          `json:"score_source"`
	Suggestions []Suggestion    `json:"suggestions"`
	Notice      string          `json:"notice,omitempty"`
}

// TrendPoint is one historical score sample for the trend view.
type TrendPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Score     int       `json:"score"`
	Platform  Platform  `json:"platform,omitempty"`
}

// TrendSummary compares the latest check-in against the earlier history.
type TrendSummary struct {
	Points       []TrendPoint `json:"points"`
	Latest       int          `json:"latest"`
	Previous     *int         `json:"previous,omitempty"`
	Delta        *int         `json:"delta,omitempty"`
	Direction    string       `json:"direction"`
	AverageScore float64      `json:"average_score"`
}
