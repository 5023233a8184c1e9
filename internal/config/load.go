package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/mhpenta/sdprompt/provider/claude"
	"github.com/mhpenta/sdprompt/provider/gemini"
	"github.com/mhpenta/sdprompt/provider/openai"
)

// EnvPrefix prefixes every environment variable, e.g. SDPROMPT_SERVER_PORT.
const EnvPrefix = "SDPROMPT"

var validate = validator.New()

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the file. With an
// empty path, sdprompt.yaml is looked up in the working directory and in
// $HOME/.config/sdprompt; a missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("sdprompt")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/sdprompt")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "text")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("manager.timeout", "10s")
	v.SetDefault("manager.max_retries", 2)
	v.SetDefault("manager.backoff_base", "1s")

	v.SetDefault("providers.gemini.endpoint", gemini.DefaultBaseURL)
	v.SetDefault("providers.gemini.model", gemini.DefaultModel)
	v.SetDefault("providers.gemini.requests_per_minute", gemini.DefaultRequestsPerMinute)

	v.SetDefault("providers.openai.endpoint", openai.DefaultEndpoint)
	v.SetDefault("providers.openai.model", openai.DefaultModel)
	v.SetDefault("providers.openai.requests_per_minute", openai.DefaultRequestsPerMinute)

	v.SetDefault("providers.claude.endpoint", claude.DefaultEndpoint)
	v.SetDefault("providers.claude.model", claude.DefaultModel)
	v.SetDefault("providers.claude.requests_per_minute", claude.DefaultRequestsPerMinute)

	v.SetDefault("order", []string{"gemini", "openai", "claude"})
	v.SetDefault("glossary.fallback", false)
}

// bindEnvs binds keys that AutomaticEnv cannot discover on its own: keys
// without a default, and the plain vendor key names.
func bindEnvs(v *viper.Viper) error {
	binds := []struct {
		key     string
		envVars []string
	}{
		{"providers.gemini.api_key", []string{"SDPROMPT_PROVIDERS_GEMINI_API_KEY", "GEMINI_API_KEY"}},
		{"providers.openai.api_key", []string{"SDPROMPT_PROVIDERS_OPENAI_API_KEY", "OPENAI_API_KEY"}},
		{"providers.claude.api_key", []string{"SDPROMPT_PROVIDERS_CLAUDE_API_KEY", "CLAUDE_API_KEY"}},
		{"providers.gemini.enabled", []string{"SDPROMPT_PROVIDERS_GEMINI_ENABLED"}},
		{"providers.openai.enabled", []string{"SDPROMPT_PROVIDERS_OPENAI_ENABLED"}},
		{"providers.claude.enabled", []string{"SDPROMPT_PROVIDERS_CLAUDE_ENABLED"}},
		{"glossary.file", []string{"SDPROMPT_GLOSSARY_FILE"}},
	}

	for _, b := range binds {
		args := append([]string{b.key}, b.envVars...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("error binding environment variable %s: %w", b.envVars[0], err)
		}
	}
	return nil
}
