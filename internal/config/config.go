// Package config loads sdprompt settings from an optional YAML file and the
// environment.
package config

import (
	"time"

	"github.com/mhpenta/sdprompt"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Manager   ManagerConfig   `mapstructure:"manager" validate:"required"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Glossary  GlossaryConfig  `mapstructure:"glossary"`

	// Order is the rotation order of enabled providers.
	Order []string `mapstructure:"order" validate:"required,min=1,unique,dive,oneof=gemini openai claude"`
}

// ServerConfig contains the HTTP server and logging settings.
type ServerConfig struct {
	Port           int      `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel       string   `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat      string   `mapstructure:"log_format" validate:"required,oneof=json text"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ManagerConfig contains the retry and timeout policy.
type ManagerConfig struct {
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxRetries  int           `mapstructure:"max_retries" validate:"gte=0,lte=10"`
	BackoffBase time.Duration `mapstructure:"backoff_base" validate:"gte=0"`
}

// ProvidersConfig holds one block per vendor.
type ProvidersConfig struct {
	Gemini ProviderSettings `mapstructure:"gemini"`
	OpenAI ProviderSettings `mapstructure:"openai"`
	Claude ProviderSettings `mapstructure:"claude"`
}

// ProviderSettings configures one vendor.
type ProviderSettings struct {
	APIKey            string `mapstructure:"api_key"`
	Endpoint          string `mapstructure:"endpoint" validate:"omitempty,url"`
	Model             string `mapstructure:"model"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute" validate:"gte=0"`

	// Enabled overrides the default of enabling every provider with a key.
	Enabled *bool `mapstructure:"enabled"`
}

// IsEnabled reports whether the provider should be registered.
func (p ProviderSettings) IsEnabled() bool {
	if p.Enabled != nil {
		return *p.Enabled
	}
	return p.APIKey != ""
}

// GlossaryConfig controls the Japanese gloss helper.
type GlossaryConfig struct {
	// File is an optional YAML dictionary merged over the built-in tables.
	File string `mapstructure:"file"`

	// Fallback sends prompts the dictionary cannot gloss to the current provider.
	Fallback bool `mapstructure:"fallback"`
}

// Settings returns the block for name.
func (c *Config) Settings(name sdprompt.ProviderName) (ProviderSettings, bool) {
	switch name {
	case sdprompt.ProviderGemini:
		return c.Providers.Gemini, true
	case sdprompt.ProviderOpenAI:
		return c.Providers.OpenAI, true
	case sdprompt.ProviderClaude:
		return c.Providers.Claude, true
	default:
		return ProviderSettings{}, false
	}
}

// ProviderConfigs returns every configured provider in rotation order.
func (c *Config) ProviderConfigs() []sdprompt.ProviderConfig {
	out := make([]sdprompt.ProviderConfig, 0, len(c.Order))
	for _, n := range c.Order {
		name := sdprompt.ProviderName(n)
		s, ok := c.Settings(name)
		if !ok {
			continue
		}
		out = append(out, sdprompt.ProviderConfig{
			Name:                 name,
			Endpoint:             s.Endpoint,
			APIKey:               s.APIKey,
			Model:                s.Model,
			MaxRequestsPerMinute: s.RequestsPerMinute,
			Enabled:              s.IsEnabled(),
		})
	}
	return out
}

// EnabledProviders returns the enabled subset of ProviderConfigs.
func (c *Config) EnabledProviders() []sdprompt.ProviderConfig {
	var out []sdprompt.ProviderConfig
	for _, pc := range c.ProviderConfigs() {
		if pc.Enabled {
			out = append(out, pc)
		}
	}
	return out
}
