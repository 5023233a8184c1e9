package sdprompt

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoProviders is returned when no provider is enabled. No network call is made.
	ErrNoProviders = errors.New("no providers available")

	// ErrProviderNotConfigured is returned when a provider lacks required config.
	ErrProviderNotConfigured = errors.New("provider not configured")
)

// VendorHTTPError is returned when a vendor answers with a non-2xx status.
type VendorHTTPError struct {
	Provider string
	Status   int
	Body     string
}

func (e *VendorHTTPError) Error() string {
	return fmt.Sprintf("%s api error: status %d: %s", e.Provider, e.Status, truncate(e.Body, 300))
}

// EmptyGenerationError is returned when a vendor replied but no usable
// candidate could be extracted from its output.
type EmptyGenerationError struct {
	Provider string
	Raw      string
}

func (e *EmptyGenerationError) Error() string {
	return fmt.Sprintf("%s returned no usable prompts", e.Provider)
}

// RateLimitedError is returned when the local per-minute cap of a provider is
// reached. The vendor is not called.
type RateLimitedError struct {
	Provider   string
	Limit      int
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s: %d requests per minute, retry after %v",
		e.Provider, e.Limit, e.RetryAfter)
}

// TimeoutError is returned when a provider call does not finish before the
// manager's deadline.
type TimeoutError struct {
	Provider string
	Timeout  time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timeout: %s did not answer within %v", e.Provider, e.Timeout)
}

// AllProvidersFailedError is the terminal error of Manager.Generate.
type AllProvidersFailedError struct {
	Tried     []string
	LastError error
}

func (e *AllProvidersFailedError) Error() string {
	if e.LastError == nil {
		return "all providers failed"
	}
	return fmt.Sprintf("all providers failed (%d tried): %v", len(e.Tried), e.LastError)
}

func (e *AllProvidersFailedError) Unwrap() error {
	return e.LastError
}

// IsRateLimited checks if an error is, or wraps, a RateLimitedError.
func IsRateLimited(err error) bool {
	var rlErr *RateLimitedError
	return errors.As(err, &rlErr)
}

// IsTimeout checks if an error is, or wraps, a TimeoutError.
func IsTimeout(err error) bool {
	var tErr *TimeoutError
	return errors.As(err, &tErr)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
