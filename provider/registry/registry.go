// Package registry maps provider names to their constructors.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mhpenta/sdprompt"
	"github.com/mhpenta/sdprompt/provider/claude"
	"github.com/mhpenta/sdprompt/provider/gemini"
	"github.com/mhpenta/sdprompt/provider/openai"
)

// Factory builds a provider from its configuration.
type Factory func(ctx context.Context, cfg sdprompt.ProviderConfig) (sdprompt.PromptProvider, error)

// Registry holds named provider factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[sdprompt.ProviderName]Factory
}

// New returns a registry with no factories.
func New() *Registry {
	return &Registry{factories: make(map[sdprompt.ProviderName]Factory)}
}

// Default returns a registry with the built-in vendors.
func Default() *Registry {
	r := New()
	r.Register(sdprompt.ProviderGemini, func(ctx context.Context, cfg sdprompt.ProviderConfig) (sdprompt.PromptProvider, error) {
		return gemini.New(ctx, cfg)
	})
	r.Register(sdprompt.ProviderOpenAI, func(_ context.Context, cfg sdprompt.ProviderConfig) (sdprompt.PromptProvider, error) {
		return openai.New(cfg)
	})
	r.Register(sdprompt.ProviderClaude, func(_ context.Context, cfg sdprompt.ProviderConfig) (sdprompt.PromptProvider, error) {
		return claude.New(cfg)
	})
	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name sdprompt.ProviderName, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Get returns the factory for name and whether one is registered.
func (r *Registry) Get(name sdprompt.ProviderName) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// Names lists registered provider names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name.String())
	}
	sort.Strings(names)
	return names
}

// Build constructs the provider named by cfg.Name.
func (r *Registry) Build(ctx context.Context, cfg sdprompt.ProviderConfig) (sdprompt.PromptProvider, error) {
	f, ok := r.Get(cfg.Name)
	if !ok {
		return nil, fmt.Errorf("unknown provider %q", cfg.Name)
	}
	return f(ctx, cfg)
}
