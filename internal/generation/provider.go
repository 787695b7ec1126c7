package generation

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

var (
	// ErrNotConfigured is returned when no completion credential is set.
	// The pipeline treats it as a signal to use the local fallback, not
	// as a fatal error.
	ErrNotConfigured = errors.New("completion provider is not configured")
)

// Provider is the thin request/response boundary around the completion
// API. One attempt, no retry policy.
type Provider interface {
	SendPrompt(ctx context.Context, system, user string) (string, error)
}

type openAIProvider struct {
	client    *openai.Client
	model     string
	maxTokens int
}

const defaultModel = "gpt-4o-mini"

func NewOpenAIProvider(apiKey, model string) Provider {
	if apiKey == "" {
		return &openAIProvider{}
	}
	if model == "" {
		model = defaultModel
	}
	return &openAIProvider{
		client:    openai.NewClient(apiKey),
		model:     model,
		maxTokens: 4096,
	}
}

func (p *openAIProvider) SendPrompt(ctx context.Context, system, user string) (string, error) {
	if p.client == nil {
		return "", ErrNotConfigured
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.2,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
