package ratelimiter

import (
	"sync"
	"time"
)

// DefaultWindow is the span over which requests are counted.
const DefaultWindow = time.Minute

// SlidingWindow keeps the timestamps of recent requests and rejects a new one
// once maxRequests fall inside the trailing window.
type SlidingWindow struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	stamps      []time.Time
	last        time.Time
	now         func() time.Time
}

// Ensure SlidingWindow implements Limiter.
var _ Limiter = (*SlidingWindow)(nil)

// Option configures a SlidingWindow.
type Option func(*SlidingWindow)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(w *SlidingWindow) {
		w.now = now
	}
}

// WithWindow overrides DefaultWindow.
func WithWindow(d time.Duration) Option {
	return func(w *SlidingWindow) {
		w.window = d
	}
}

// New creates a limiter allowing maxRequests per minute.
// maxRequests <= 0 disables the cap; requests are still recorded for stats.
func New(maxRequests int, opts ...Option) *SlidingWindow {
	w := &SlidingWindow{
		maxRequests: maxRequests,
		window:      DefaultWindow,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// TryAcquire records a request if fewer than maxRequests were recorded in
// the trailing window.
func (w *SlidingWindow) TryAcquire() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	w.prune(now)
	if w.maxRequests > 0 && len(w.stamps) >= w.maxRequests {
		return false
	}
	w.stamps = append(w.stamps, now)
	w.last = now
	return true
}

// TimeUntilAvailable returns how long until the oldest recorded request
// leaves the window, or zero if a request would be accepted now.
func (w *SlidingWindow) TimeUntilAvailable() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	w.prune(now)
	if w.maxRequests <= 0 || len(w.stamps) < w.maxRequests {
		return 0
	}
	// The request that must expire is the one making the window full.
	oldest := w.stamps[len(w.stamps)-w.maxRequests]
	return oldest.Add(w.window).Sub(now)
}

// Count returns the number of requests in the trailing window.
func (w *SlidingWindow) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.prune(w.now())
	return len(w.stamps)
}

// Limit returns the configured cap.
func (w *SlidingWindow) Limit() int {
	return w.maxRequests
}

// LastRequest returns the time of the most recent recorded request.
func (w *SlidingWindow) LastRequest() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// prune drops timestamps at or before now-window. Caller holds mu.
func (w *SlidingWindow) prune(now time.Time) {
	cutoff := now.Add(-w.window)
	i := 0
	for i < len(w.stamps) && !w.stamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		w.stamps = append(w.stamps[:0], w.stamps[i:]...)
	}
}
