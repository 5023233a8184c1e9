package sdprompt

import "context"

// PromptProvider is the contract every LLM vendor adapter implements.
// Implement this interface to add support for a new vendor.
type PromptProvider interface {
	// Name identifies the provider in logs, stats and errors.
	Name() string

	// Generate turns a Japanese keyword into an ordered list of English
	// prompt candidates using the instruction template selected by style.
	Generate(ctx context.Context, keyword string, style StyleVariant) ([]string, error)

	// Translate sends instruction to the vendor verbatim and returns the
	// trimmed completion text.
	Translate(ctx context.Context, instruction string) (string, error)

	// Close releases any resources held by the provider.
	Close() error
}
