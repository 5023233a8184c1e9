package sdprompt

import "time"

// ProviderStats describes recent usage of one provider.
type ProviderStats struct {
	// RequestCount is the number of attempts in the trailing minute
	RequestCount int `json:"requestCount"`

	// Limit is the configured per-minute cap (0 = unlimited)
	Limit int `json:"limit"`

	// LastRequest is nil until the provider was called
	LastRequest *time.Time `json:"lastRequest"`
}

// Stats is a snapshot of the manager state.
type Stats struct {
	CurrentProvider string                   `json:"currentProvider"`
	TotalProviders  int                      `json:"totalProviders"`
	Providers       map[string]ProviderStats `json:"stats"`
}
