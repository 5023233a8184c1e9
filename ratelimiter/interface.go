package ratelimiter

import (
	"time"
)

// Limiter defines the interface for per-provider rate limiters.
// Implementations can be local (in-memory) or distributed (Redis, etc.).
type Limiter interface {
	// TryAcquire atomically checks capacity and records a request if available.
	// Returns true if the request was recorded, false if the cap is reached.
	TryAcquire() bool

	// TimeUntilAvailable returns how long until a request would be accepted (read-only).
	TimeUntilAvailable() time.Duration

	// Count returns the number of requests recorded in the current window.
	Count() int

	// Limit returns the configured cap. Zero or less means unlimited.
	Limit() int

	// LastRequest returns the time of the most recent recorded request.
	// The zero time is returned when nothing was recorded.
	LastRequest() time.Time
}
