package sdprompt

// ProviderName identifies a vendor.
type ProviderName string

const (
	ProviderGemini ProviderName = "gemini"
	ProviderOpenAI ProviderName = "openai"
	ProviderClaude ProviderName = "claude"
)

// String returns the provider identifier.
func (p ProviderName) String() string {
	return string(p)
}

// ProviderConfig configures a single vendor. It is immutable after load.
type ProviderConfig struct {
	// Name of the vendor
	Name ProviderName

	// Endpoint is the vendor URL. For Gemini this is the API base URL,
	// for OpenAI and Claude the full completion endpoint.
	Endpoint string

	// APIKey for authentication
	APIKey string

	// Model identifier sent to the vendor (optional, vendor default otherwise)
	Model string

	// MaxRequestsPerMinute caps attempts in a sliding 60 second window.
	// Zero or less disables the cap.
	MaxRequestsPerMinute int

	// Enabled providers are registered with the manager
	Enabled bool
}

// StyleVariant selects the instruction template sent to a provider.
type StyleVariant string

const (
	StyleSD15        StyleVariant = "sd15"
	StyleIllustrious StyleVariant = "illustrious"

	StyleDefault StyleVariant = StyleSD15
)

// Styles lists the supported style variants.
func Styles() []StyleVariant {
	return []StyleVariant{StyleSD15, StyleIllustrious}
}

// String returns the style identifier.
func (s StyleVariant) String() string {
	return string(s)
}

// Resolve returns the default style for an empty value.
func (s StyleVariant) Resolve() StyleVariant {
	if s == "" {
		return StyleDefault
	}
	return s
}
