package sdprompt

import (
	"context"
	"sync/atomic"
)

// MockProvider is a mock implementation of PromptProvider.
type MockProvider struct {
	NameValue     string
	GenerateFunc  func(ctx context.Context, keyword string, style StyleVariant) ([]string, error)
	TranslateFunc func(ctx context.Context, instruction string) (string, error)
	CloseFunc     func() error

	generateCalls  atomic.Int32
	translateCalls atomic.Int32
}

func (m *MockProvider) Name() string {
	if m.NameValue == "" {
		return "mock"
	}
	return m.NameValue
}

func (m *MockProvider) Generate(ctx context.Context, keyword string, style StyleVariant) ([]string, error) {
	m.generateCalls.Add(1)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, keyword, style)
	}
	return []string{"prompt"}, nil
}

func (m *MockProvider) Translate(ctx context.Context, instruction string) (string, error) {
	m.translateCalls.Add(1)
	if m.TranslateFunc != nil {
		return m.TranslateFunc(ctx, instruction)
	}
	return "translation", nil
}

func (m *MockProvider) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

func (m *MockProvider) GenerateCalls() int {
	return int(m.generateCalls.Load())
}

func (m *MockProvider) TranslateCalls() int {
	return int(m.translateCalls.Load())
}
