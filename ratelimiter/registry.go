package ratelimiter

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound is returned by Get for a provider without a limiter.
var ErrNotFound = errors.New("rate limiter not found")

// Registry holds one limiter per provider name.
type Registry interface {
	Get(provider string) (Limiter, error)
	Set(provider string, limiter Limiter)

	// Delete drops the provider's limiter and its recorded window.
	Delete(provider string)

	// Names lists providers with a limiter, sorted.
	Names() []string
}

type providerLimiters struct {
	mu       sync.RWMutex
	limiters map[string]Limiter
}

// NewRegistry creates an in-memory registry.
func NewRegistry() Registry {
	return &providerLimiters{
		limiters: make(map[string]Limiter),
	}
}

func (r *providerLimiters) Get(provider string) (Limiter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limiter, ok := r.limiters[provider]
	if !ok {
		return nil, fmt.Errorf("%w for provider %q", ErrNotFound, provider)
	}
	return limiter, nil
}

func (r *providerLimiters) Set(provider string, limiter Limiter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.limiters[provider] = limiter
}

func (r *providerLimiters) Delete(provider string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.limiters, provider)
}

func (r *providerLimiters) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.limiters))
	for name := range r.limiters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
