package sdprompt

import (
	"context"
	"log/slog"
	"time"
)

// ManagerOption configures the Manager.
type ManagerOption func(*Manager)

// WithLogger sets a structured logger for the manager.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithMaxRetries sets how many times a failing provider is retried before
// rotating to the next one. Negative values are treated as zero.
func WithMaxRetries(n int) ManagerOption {
	return func(m *Manager) {
		if n < 0 {
			n = 0
		}
		m.maxRetries = n
	}
}

// WithTimeout sets the deadline applied to each vendor call.
func WithTimeout(d time.Duration) ManagerOption {
	return func(m *Manager) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithBackoffBase sets the base delay. Retry n waits 2^n * base.
func WithBackoffBase(d time.Duration) ManagerOption {
	return func(m *Manager) {
		m.backoffBase = d
	}
}

// WithClock replaces time.Now for rate limit windows and durations.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.now = now
	}
}

// WithSleep replaces the backoff sleep. The function must return early with
// ctx.Err() when ctx is cancelled.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) ManagerOption {
	return func(m *Manager) {
		m.sleep = sleep
	}
}

// NewManager creates a Manager with the given options. Providers are added
// with Register in rotation order.
//
// Example:
//
//	gen, err := gemini.New(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	manager := sdprompt.NewManager(
//	    sdprompt.WithLogger(slog.Default()),
//	    sdprompt.WithTimeout(10*time.Second),
//	).Register(gen, cfg.MaxRequestsPerMinute)
func NewManager(opts ...ManagerOption) *Manager {
	m := New()
	for _, opt := range opts {
		opt(m)
	}
	return m
}
