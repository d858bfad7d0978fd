package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/errors"
	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/resilience"
	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/types"
)

const (
	suggestionModel   = openai.GPT4o
	suggestionTimeout = 10 * time.Second

	systemPrompt = `You are a mental wellness coach specialized in digital wellbeing.
Provide 3-5 specific, actionable suggestions to improve the user's mental wellness based on their current state.
Each suggestion should have:
1. A short, catchy title
2. An appropriate emoji
3. A brief description (1-2 sentences max) with concrete advice

Format your response as JSON with the following structure:
{"suggestions": [{"title": "Suggestion title", "emoji": "Relevant emoji", "description": "Brief description with actionable advice"}]}`
)

// OpenAIAdapter generates personalized wellness suggestions through the
// OpenAI chat API. Callers must treat every error as soft and fall back to
// the static catalogs.
type OpenAIAdapter struct {
	client      *openai.Client
	breaker     *resilience.CircuitBreaker
	retryConfig resilience.RetryConfig
	configured  bool
}

// NewOpenAIAdapter creates the adapter. An empty API key produces a disabled
// adapter rather than an error so the service degrades instead of failing
// to start.
func NewOpenAIAdapter(apiKey string) *OpenAIAdapter {
	a := &OpenAIAdapter{
		breaker: resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
			FailureThreshold: 5,
			RecoveryTimeout:  30 * time.Second,
			SuccessThreshold: 2,
		}),
		retryConfig: resilience.ExternalAPIRetryConfig(),
	}

	if apiKey != "" {
		a.client = openai.NewClient(apiKey)
		a.configured = true
	}

	return a
}

// IsConfigured reports whether an API key was supplied.
func (a *OpenAIAdapter) IsConfigured() bool {
	return a.configured
}

// GenerateSuggestions asks the model for 3-5 personalized suggestions given
// the user's current metrics. The call is bounded by its own timeout and
// protected by a circuit breaker; any failure surfaces as an external API
// error for the caller to degrade on.
func (a *OpenAIAdapter) GenerateSuggestions(ctx context.Context, m types.CanonicalMetrics, platform types.Platform) ([]types.Suggestion, error) {
	if !a.configured {
		return nil, errors.NewExternalAPIError("OpenAI", fmt.Errorf("no API key configured"))
	}

	ctx, cancel := context.WithTimeout(ctx, suggestionTimeout)
	defer cancel()

	prompt := buildUserPrompt(m, platform)

	var content string
	err := a.breaker.Call(func() error {
		return resilience.RetryWithConfig(ctx, a.retryConfig, func() error {
			resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
				Model: suggestionModel,
				Messages: []openai.ChatCompletionMessage{
					{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
					{Role: openai.ChatMessageRoleUser, Content: prompt},
				},
				ResponseFormat: &openai.ChatCompletionResponseFormat{
					Type: openai.ChatCompletionResponseFormatTypeJSONObject,
				},
				Temperature: 0.7,
			})
			if err != nil {
				return errors.NewExternalAPIError("OpenAI", err)
			}
			if len(resp.Choices) == 0 {
				return errors.NewExternalAPIError("OpenAI", fmt.Errorf("empty completion response"))
			}

			content = resp.Choices[0].Message.Content
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	parsed, err := parseSuggestions(content)
	if err != nil {
		return nil, errors.NewExternalAPIError("OpenAI", err)
	}

	return parsed, nil
}

// buildUserPrompt describes the user's current state for the model.
func buildUserPrompt(m types.CanonicalMetrics, platform types.Platform) string {
	sleep := 3
	if m.Sleep != nil {
		sleep = *m.Sleep
	}

	anxious := "No"
	if m.Anxiety {
		anxious = "Yes"
	}

	prompt := fmt.Sprintf(`User's current mental state:
- Mood: %d/5 (higher is better)
- Sleep Quality: %d/5 (higher is better)
- Stress Level: %d/5 (lower is better)
- Feeling Anxious: %s`, m.Mood, sleep, m.Stress, anxious)

	if platform.IsKnown() {
		prompt += fmt.Sprintf("\n\nUser is particularly interested in improving their mental wellness while using %s.", platform)
	}

	return prompt
}

// parseSuggestions accepts either the documented object envelope or a bare
// array, since the model occasionally returns the latter.
func parseSuggestions(content string) ([]types.Suggestion, error) {
	var envelope struct {
		Suggestions []types.Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(content), &envelope); err == nil && len(envelope.Suggestions) > 0 {
		return envelope.Suggestions, nil
	}

	var bare []types.Suggestion
	if err := json.Unmarshal([]byte(content), &bare); err == nil && len(bare) > 0 {
		return bare, nil
	}

	return nil, fmt.Errorf("unrecognized suggestion payload: %.80s", content)
}
