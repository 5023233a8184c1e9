// Package gemini provides a PromptProvider implementation using Google's Gemini API.
//
// This provider uses the Gemini API backend via the official Go SDK:
// https://github.com/googleapis/go-genai
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mhpenta/sdprompt"
	"google.golang.org/genai"
)

// GeminiProvider implements PromptProvider using Google's Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// Ensure GeminiProvider implements the interface.
var _ sdprompt.PromptProvider = (*GeminiProvider)(nil)

// Option configures a GeminiProvider.
type Option func(*genai.ClientConfig)

// WithHTTPClient sets the HTTP client used by the SDK.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *genai.ClientConfig) {
		cfg.HTTPClient = c
	}
}

// New creates a new GeminiProvider from a ProviderConfig.
func New(ctx context.Context, config sdprompt.ProviderConfig, opts ...Option) (*GeminiProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini: %w: missing api key", sdprompt.ErrProviderNotConfigured)
	}

	clientCfg := &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  config.APIKey,
	}
	if config.Endpoint != "" {
		clientCfg.HTTPOptions.BaseURL = config.Endpoint
	}
	for _, opt := range opts {
		opt(clientCfg)
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = DefaultModel
	}

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// NewWithAPIKey creates a provider with an API key and default settings.
func NewWithAPIKey(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	return New(ctx, sdprompt.ProviderConfig{
		Name:   sdprompt.ProviderGemini,
		APIKey: apiKey,
	})
}

// Name returns the provider identifier.
func (g *GeminiProvider) Name() string {
	return sdprompt.ProviderGemini.String()
}

// Generate expands keyword into prompt candidates.
func (g *GeminiProvider) Generate(ctx context.Context, keyword string, style sdprompt.StyleVariant) ([]string, error) {
	instruction, err := sdprompt.BuildInstruction(keyword, style)
	if err != nil {
		return nil, err
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](generateTemperature),
		TopK:            genai.Ptr[float32](generateTopK),
		TopP:            genai.Ptr[float32](generateTopP),
		MaxOutputTokens: generateMaxTokens,
	}

	text, err := g.complete(ctx, instruction, genConfig)
	if err != nil {
		return nil, err
	}

	prompts := sdprompt.ExtractCandidates(text)
	if len(prompts) == 0 {
		return nil, &sdprompt.EmptyGenerationError{Provider: g.Name(), Raw: text}
	}
	return prompts, nil
}

// Translate sends instruction verbatim and returns the trimmed reply.
func (g *GeminiProvider) Translate(ctx context.Context, instruction string) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](translateTemperature),
		MaxOutputTokens: translateMaxTokens,
	}

	text, err := g.complete(ctx, instruction, genConfig)
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &sdprompt.EmptyGenerationError{Provider: g.Name()}
	}
	return text, nil
}

// Close releases any resources held by the provider.
func (g *GeminiProvider) Close() error {
	// The genai.Client doesn't require explicit closing in the current SDK
	return nil
}

func (g *GeminiProvider) complete(ctx context.Context, prompt string, genConfig *genai.GenerateContentConfig) (string, error) {
	contents := []*genai.Content{
		{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, genConfig)
	if err != nil {
		return "", g.convertError(err)
	}
	return g.extractText(result)
}

// extractText concatenates the text parts of every candidate, skipping
// thought parts.
func (g *GeminiProvider) extractText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 {
		return "", &sdprompt.EmptyGenerationError{Provider: g.Name()}
	}

	var sb strings.Builder
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Thought || part.Text == "" {
				continue
			}
			sb.WriteString(part.Text)
		}
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", &sdprompt.EmptyGenerationError{Provider: g.Name()}
	}
	return sb.String(), nil
}

// convertError maps SDK API errors onto VendorHTTPError; other errors,
// including context errors, pass through.
func (g *GeminiProvider) convertError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &sdprompt.VendorHTTPError{
			Provider: g.Name(),
			Status:   apiErr.Code,
			Body:     apiErr.Message,
		}
	}
	return fmt.Errorf("gemini request failed: %w", err)
}
