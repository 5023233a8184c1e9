// Package openai provides a PromptProvider backed by the OpenAI chat
// completions endpoint.
package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/mhpenta/sdprompt"
	"github.com/mhpenta/sdprompt/provider/internal/httpclient"
)

const (
	DefaultEndpoint          = "https://api.openai.com/v1/chat/completions"
	DefaultModel             = "gpt-3.5-turbo"
	DefaultRequestsPerMinute = 60
)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// OpenAIProvider implements PromptProvider using chat completions.
type OpenAIProvider struct {
	client *httpclient.Client
	model  string
}

// Ensure OpenAIProvider implements the interface.
var _ sdprompt.PromptProvider = (*OpenAIProvider)(nil)

// New creates a new OpenAIProvider from a ProviderConfig.
func New(config sdprompt.ProviderConfig) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("openai: %w: missing api key", sdprompt.ErrProviderNotConfigured)
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	model := config.Model
	if model == "" {
		model = DefaultModel
	}

	client := httpclient.New(sdprompt.ProviderOpenAI.String(), endpoint, map[string]string{
		"Authorization": "Bearer " + config.APIKey,
	})

	return &OpenAIProvider{client: client, model: model}, nil
}

// Name returns the provider identifier.
func (p *OpenAIProvider) Name() string {
	return sdprompt.ProviderOpenAI.String()
}

// Generate expands keyword into prompt candidates.
func (p *OpenAIProvider) Generate(ctx context.Context, keyword string, style sdprompt.StyleVariant) ([]string, error) {
	instruction, err := sdprompt.BuildInstruction(keyword, style)
	if err != nil {
		return nil, err
	}

	text, err := p.complete(ctx, chatRequest{
		Model:       p.model,
		Messages:    []message{{Role: "user", Content: instruction}},
		MaxTokens:   150,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	prompts := sdprompt.ExtractCandidates(text)
	if len(prompts) == 0 {
		return nil, &sdprompt.EmptyGenerationError{Provider: p.Name(), Raw: text}
	}
	return prompts, nil
}

// Translate sends instruction with the translator system prompt.
func (p *OpenAIProvider) Translate(ctx context.Context, instruction string) (string, error) {
	text, err := p.complete(ctx, chatRequest{
		Model: p.model,
		Messages: []message{
			{Role: "system", Content: sdprompt.TranslationSystemPrompt},
			{Role: "user", Content: instruction},
		},
		MaxTokens:   500,
		Temperature: 0.3,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Close releases idle connections.
func (p *OpenAIProvider) Close() error {
	p.client.Close()
	return nil
}

func (p *OpenAIProvider) complete(ctx context.Context, req chatRequest) (string, error) {
	var resp chatResponse
	if err := p.client.PostJSON(ctx, req, &resp); err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", &sdprompt.EmptyGenerationError{Provider: p.Name()}
	}
	return resp.Choices[0].Message.Content, nil
}
