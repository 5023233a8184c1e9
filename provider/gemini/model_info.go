package gemini

// DefaultModel is used when ProviderConfig.Model is empty.
const DefaultModel = "gemini-1.5-flash-latest"

// DefaultBaseURL is the Gemini API base URL.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/"

// DefaultRequestsPerMinute matches the free tier quota.
const DefaultRequestsPerMinute = 15

// Sampling parameters for keyword expansion. Translation uses a lower
// temperature and a larger output budget.
const (
	generateTemperature = 0.2
	generateTopK        = 40
	generateTopP        = 0.95
	generateMaxTokens   = 1000

	translateTemperature = 0.3
	translateMaxTokens   = 500
)
