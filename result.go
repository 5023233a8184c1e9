package sdprompt

import "time"

// PromptResult holds the outcome of one generation request.
type PromptResult struct {
	// Prompts are the parsed candidates in vendor order
	Prompts []string

	// Provider that produced the prompts
	Provider string

	// Attempts is the number of vendor calls made across all providers
	Attempts int

	// Duration of the whole request, retries and backoff included
	Duration time.Duration
}
