package ranker

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

// ErrEmptyResponse is returned when the model answers without any choice.
var ErrEmptyResponse = errors.New("ranking model returned no choices")

// OpenAIRanker ranks candidates with an OpenAI-compatible chat completion API (Groq by default).
type OpenAIRanker struct {
	client *openai.Client
	model  string
}

// Ensure OpenAIRanker implements Ranker
var _ Ranker = (*OpenAIRanker)(nil)

// NewOpenAIRanker creates a ranker talking to baseURL with apiKey.
func NewOpenAIRanker(apiKey, baseURL, model string) *OpenAIRanker {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIRanker{client: openai.NewClientWithConfig(cfg), model: model}
}

// Rank asks the model for the best matches in JSON mode.
func (r *OpenAIRanker) Rank(ctx context.Context, bio string, candidates []Candidate) ([]Match, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt(bio)},
			{Role: openai.ChatMessageRoleUser, Content: FormatCandidates(candidates)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	matches, err := ParseMatches(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("model", r.model).
		Int("candidates", len(candidates)).
		Int("matches", len(matches)).
		Int("total_tokens", resp.Usage.TotalTokens).
		Msg("ranking completed")
	return matches, nil
}
