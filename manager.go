package sdprompt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mhpenta/sdprompt/ratelimiter"
)

const (
	// DefaultMaxRetries is the number of retries after the first attempt.
	DefaultMaxRetries = 2

	// DefaultTimeout bounds a single vendor call.
	DefaultTimeout = 10 * time.Second

	// DefaultBackoffBase is multiplied by 2^retry between attempts.
	DefaultBackoffBase = time.Second
)

// Manager rotates through the registered providers, retrying each with
// exponential backoff, enforcing per-provider rate limits and racing every
// vendor call against a timeout.
type Manager struct {
	// Providers in rotation order
	providers []PromptProvider

	// Index of the provider tried first by the next request
	cursor int

	// Rate limiting (per provider)
	rateLimiters ratelimiter.Registry

	maxRetries  int
	timeout     time.Duration
	backoffBase time.Duration

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	// Logger for structured logging
	logger *slog.Logger

	mu sync.RWMutex
}

// New creates a Manager with default policy and no providers.
func New() *Manager {
	return &Manager{
		logger:       slog.Default(),
		rateLimiters: ratelimiter.NewRegistry(),
		maxRetries:   DefaultMaxRetries,
		timeout:      DefaultTimeout,
		backoffBase:  DefaultBackoffBase,
		now:          time.Now,
		sleep:        sleepContext,
	}
}

// Register appends a provider to the rotation with an in-memory sliding
// window allowing maxRequestsPerMinute attempts. Use SetRateLimiter to
// override the limiter.
func (m *Manager) Register(provider PromptProvider, maxRequestsPerMinute int) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.providers = append(m.providers, provider)
	m.rateLimiters.Set(provider.Name(), ratelimiter.New(maxRequestsPerMinute, ratelimiter.WithClock(m.clock)))
	return m
}

// SetRateLimiter sets a custom rate limiter for a provider.
func (m *Manager) SetRateLimiter(provider string, limiter ratelimiter.Limiter) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rateLimiters.Set(provider, limiter)
	return m
}

// SetLogger sets a structured logger for the manager.
func (m *Manager) SetLogger(logger *slog.Logger) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger = logger
	return m
}

// Generate turns keyword into English prompt candidates.
//
// Providers are tried in rotation starting at the cursor. Each provider gets
// one attempt plus up to maxRetries retries; a provider whose local rate limit
// is reached is skipped without a vendor call. The cursor stays on the
// provider that succeeded. When every provider failed an
// *AllProvidersFailedError wrapping the last error is returned.
func (m *Manager) Generate(ctx context.Context, keyword string, style StyleVariant) (*PromptResult, error) {
	keyword = strings.TrimSpace(keyword)
	if err := ValidateKeyword(keyword); err != nil {
		return nil, err
	}
	if err := ValidateStyle(style); err != nil {
		return nil, err
	}
	style = style.Resolve()

	providers, start, logger := m.snapshot()
	if len(providers) == 0 {
		logger.Warn("generation requested with no providers")
		return nil, ErrNoProviders
	}

	began := m.clock()
	logger.Debug("starting prompt generation",
		"keyword_length", len([]rune(keyword)),
		"style", string(style),
		"first_provider", providers[start].Name(),
	)

	var (
		lastErr  error
		attempts int
		tried    = make([]string, 0, len(providers))
	)
	for i := range providers {
		idx := (start + i) % len(providers)
		provider := providers[idx]
		tried = append(tried, provider.Name())

		prompts, n, err := m.callWithRetry(ctx, provider, keyword, style)
		attempts += n
		if err == nil {
			m.setCursor(idx)
			duration := m.clock().Sub(began)
			logger.Info("generation completed",
				"provider", provider.Name(),
				"attempts", attempts,
				"prompt_count", len(prompts),
				"duration_ms", duration.Milliseconds(),
			)
			return &PromptResult{
				Prompts:  prompts,
				Provider: provider.Name(),
				Attempts: attempts,
				Duration: duration,
			}, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		logger.Warn("provider failed, rotating",
			"provider", provider.Name(),
			"error", err.Error(),
		)
		lastErr = err
		m.setCursor((idx + 1) % len(providers))
	}

	logger.Error("all providers failed",
		"tried", tried,
		"attempts", attempts,
		"error", lastErr.Error(),
	)
	return nil, &AllProvidersFailedError{Tried: tried, LastError: lastErr}
}

// Translate sends instruction to the current provider once. There is no
// retry or rotation and the call is not counted against the rate limit.
func (m *Manager) Translate(ctx context.Context, instruction string) (string, error) {
	if strings.TrimSpace(instruction) == "" {
		return "", ErrEmptyText
	}

	providers, cursor, logger := m.snapshot()
	if len(providers) == 0 {
		return "", ErrNoProviders
	}
	provider := providers[cursor]

	logger.Debug("translating", "provider", provider.Name(), "text_length", len(instruction))

	text, err := raceTimeout(ctx, provider.Name(), m.timeout, func(ctx context.Context) (string, error) {
		return provider.Translate(ctx, instruction)
	})
	if err != nil {
		logger.Warn("translation failed", "provider", provider.Name(), "error", err.Error())
		return "", err
	}
	return text, nil
}

// Stats returns a snapshot of request counts and the current provider.
func (m *Manager) Stats() Stats {
	providers, cursor, _ := m.snapshot()

	stats := Stats{
		CurrentProvider: "none",
		TotalProviders:  len(providers),
		Providers:       make(map[string]ProviderStats, len(providers)),
	}
	if len(providers) > 0 {
		stats.CurrentProvider = providers[cursor].Name()
	}

	for _, p := range providers {
		limiter := m.limiterFor(p.Name())
		if limiter == nil {
			stats.Providers[p.Name()] = ProviderStats{}
			continue
		}
		ps := ProviderStats{
			RequestCount: limiter.Count(),
			Limit:        limiter.Limit(),
		}
		if last := limiter.LastRequest(); !last.IsZero() {
			ps.LastRequest = &last
		}
		stats.Providers[p.Name()] = ps
	}
	return stats
}

// Providers returns the provider names in rotation order.
func (m *Manager) Providers() []string {
	providers, _, _ := m.snapshot()

	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name())
	}
	return names
}

// Close releases all provider resources and drops their rate limit windows.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for _, p := range m.providers {
		if err := p.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", p.Name(), err))
		}
	}
	m.providers = nil
	m.cursor = 0
	for _, name := range m.rateLimiters.Names() {
		m.rateLimiters.Delete(name)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// callWithRetry runs up to maxRetries+1 attempts against one provider and
// reports how many reached the vendor. A rate limit on the first attempt is
// returned as *RateLimitedError; once a vendor error was seen, hitting the
// limit ends the retries with that vendor error instead.
func (m *Manager) callWithRetry(ctx context.Context, provider PromptProvider, keyword string, style StyleVariant) ([]string, int, error) {
	name := provider.Name()
	limiter := m.limiterFor(name)
	logger := m.getLogger()

	var (
		lastErr  error
		attempts int
	)
	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		if attempt > 0 {
			delay := m.backoff(attempt)
			// Sleeping is pointless when the window is still full after the delay.
			if limiter != nil && limiter.TimeUntilAvailable() > delay {
				logger.Warn("rate limit reached during retries",
					"provider", name,
					"limit", limiter.Limit(),
					"error", lastErr.Error(),
				)
				return nil, attempts, lastErr
			}
			logger.Debug("retrying provider",
				"provider", name,
				"retry", attempt,
				"delay_ms", delay.Milliseconds(),
			)
			if err := m.sleep(ctx, delay); err != nil {
				return nil, attempts, err
			}
		}

		// The attempt is recorded before the call so failed requests count too.
		if limiter != nil && !limiter.TryAcquire() {
			logger.Warn("rate limit hit",
				"provider", name,
				"limit", limiter.Limit(),
			)
			if lastErr != nil {
				return nil, attempts, lastErr
			}
			return nil, attempts, &RateLimitedError{
				Provider:   name,
				Limit:      limiter.Limit(),
				RetryAfter: limiter.TimeUntilAvailable(),
			}
		}

		attempts++
		prompts, err := raceTimeout(ctx, name, m.timeout, func(ctx context.Context) ([]string, error) {
			return provider.Generate(ctx, keyword, style)
		})
		if err == nil {
			prompts = cleanPrompts(prompts)
			if len(prompts) > 0 {
				return prompts, attempts, nil
			}
			err = &EmptyGenerationError{Provider: name}
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, attempts, ctxErr
		}

		logger.Debug("attempt failed",
			"provider", name,
			"attempt", attempt+1,
			"error", err.Error(),
		)
		lastErr = err
	}
	return nil, attempts, lastErr
}

// backoff returns 2^retry * backoffBase.
func (m *Manager) backoff(retry int) time.Duration {
	return time.Duration(1<<uint(retry)) * m.backoffBase
}

func (m *Manager) snapshot() ([]PromptProvider, int, *slog.Logger) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	providers := make([]PromptProvider, len(m.providers))
	copy(providers, m.providers)
	cursor := 0
	if len(providers) > 0 {
		cursor = m.cursor % len(providers)
	}
	return providers, cursor, m.logger
}

func (m *Manager) setCursor(idx int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.providers) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = idx % len(m.providers)
}

func (m *Manager) limiterFor(provider string) ratelimiter.Limiter {
	m.mu.RLock()
	defer m.mu.RUnlock()

	limiter, err := m.rateLimiters.Get(provider)
	if err != nil {
		return nil
	}
	return limiter
}

func (m *Manager) getLogger() *slog.Logger {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.logger
}

func (m *Manager) clock() time.Time {
	return m.now()
}

// raceTimeout runs fn under a deadline. When the deadline passes first the
// call is abandoned and a *TimeoutError is returned.
func raceTimeout[T any](ctx context.Context, provider string, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		val T
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		val, err := fn(callCtx)
		done <- outcome{val: val, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil && errors.Is(out.err, context.DeadlineExceeded) && ctx.Err() == nil {
			return zero, &TimeoutError{Provider: provider, Timeout: timeout}
		}
		return out.val, out.err
	case <-callCtx.Done():
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return zero, &TimeoutError{Provider: provider, Timeout: timeout}
	}
}

func cleanPrompts(prompts []string) []string {
	out := make([]string, 0, len(prompts))
	for _, p := range prompts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
