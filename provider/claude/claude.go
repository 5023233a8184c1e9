// Package claude provides a PromptProvider backed by the Anthropic messages
// endpoint.
package claude

import (
	"context"
	"fmt"
	"strings"

	"github.com/mhpenta/sdprompt"
	"github.com/mhpenta/sdprompt/provider/internal/httpclient"
)

const (
	DefaultEndpoint          = "https://api.anthropic.com/v1/messages"
	DefaultModel             = "claude-3-haiku-20240307"
	DefaultRequestsPerMinute = 50

	// APIVersion is sent as the anthropic-version header.
	APIVersion = "2023-06-01"
)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model       string    `json:"model"`
	System      string    `json:"system,omitempty"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature *float64  `json:"temperature,omitempty"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// ClaudeProvider implements PromptProvider using the messages API.
type ClaudeProvider struct {
	client *httpclient.Client
	model  string
}

// Ensure ClaudeProvider implements the interface.
var _ sdprompt.PromptProvider = (*ClaudeProvider)(nil)

// New creates a new ClaudeProvider from a ProviderConfig.
func New(config sdprompt.ProviderConfig) (*ClaudeProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("claude: %w: missing api key", sdprompt.ErrProviderNotConfigured)
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	model := config.Model
	if model == "" {
		model = DefaultModel
	}

	client := httpclient.New(sdprompt.ProviderClaude.String(), endpoint, map[string]string{
		"x-api-key":         config.APIKey,
		"anthropic-version": APIVersion,
	})

	return &ClaudeProvider{client: client, model: model}, nil
}

// Name returns the provider identifier.
func (p *ClaudeProvider) Name() string {
	return sdprompt.ProviderClaude.String()
}

// Generate expands keyword into prompt candidates.
func (p *ClaudeProvider) Generate(ctx context.Context, keyword string, style sdprompt.StyleVariant) ([]string, error) {
	instruction, err := sdprompt.BuildInstruction(keyword, style)
	if err != nil {
		return nil, err
	}

	text, err := p.complete(ctx, messagesRequest{
		Model:     p.model,
		Messages:  []message{{Role: "user", Content: instruction}},
		MaxTokens: 150,
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
func (p *ClaudeProvider) Translate(ctx context.Context, instruction string) (string, error) {
	temperature := 0.3
	text, err := p.complete(ctx, messagesRequest{
		Model:       p.model,
		System:      sdprompt.TranslationSystemPrompt,
		Messages:    []message{{Role: "user", Content: instruction}},
		MaxTokens:   500,
		Temperature: &temperature,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Close releases idle connections.
func (p *ClaudeProvider) Close() error {
	p.client.Close()
	return nil
}

// complete joins the text blocks of the reply.
func (p *ClaudeProvider) complete(ctx context.Context, req messagesRequest) (string, error) {
	var resp messagesResponse
	if err := p.client.PostJSON(ctx, req, &resp); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type != "text" {
			continue
		}
		sb.WriteString(block.Text)
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", &sdprompt.EmptyGenerationError{Provider: p.Name()}
	}
	return text, nil
}
