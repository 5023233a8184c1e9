package config

import (
	"strings"

	"github.com/mhpenta/sdprompt"
)

// KeyState is the outcome of a key check.
type KeyState string

const (
	KeyValid   KeyState = "valid"
	KeyInvalid KeyState = "invalid"
	KeyMissing KeyState = "warning"
)

// KeyStatus reports the key check for one enabled provider.
type KeyStatus struct {
	Provider string   `json:"provider"`
	State    KeyState `json:"state"`
	Message  string   `json:"message,omitempty"`
}

// ValidateKeys checks the shape of each enabled provider's key. It does not
// contact the vendor.
func (c *Config) ValidateKeys() []KeyStatus {
	var out []KeyStatus
	for _, pc := range c.ProviderConfigs() {
		if !pc.Enabled {
			continue
		}
		out = append(out, checkKey(pc.Name, pc.APIKey))
	}
	return out
}

func checkKey(name sdprompt.ProviderName, key string) KeyStatus {
	st := KeyStatus{Provider: name.String()}
	switch {
	case key == "":
		st.State = KeyMissing
		st.Message = "api key is not set"
	case name == sdprompt.ProviderOpenAI && !strings.HasPrefix(key, "sk-"):
		st.State = KeyInvalid
		st.Message = `openai keys start with "sk-"`
	case name != sdprompt.ProviderOpenAI && len(key) <= 10:
		st.State = KeyInvalid
		st.Message = "api key is too short"
	default:
		st.State = KeyValid
	}
	return st
}

// ProviderInfo describes a provider without exposing its key.
type ProviderInfo struct {
	Name              string `json:"name"`
	Enabled           bool   `json:"enabled"`
	HasKey            bool   `json:"hasKey"`
	Key               string `json:"key,omitempty"`
	Model             string `json:"model"`
	Endpoint          string `json:"endpoint"`
	RequestsPerMinute int    `json:"requestsPerMinute"`
}

// Info reports every configured provider in rotation order.
func (c *Config) Info() []ProviderInfo {
	configs := c.ProviderConfigs()
	out := make([]ProviderInfo, 0, len(configs))
	for _, pc := range configs {
		out = append(out, ProviderInfo{
			Name:              pc.Name.String(),
			Enabled:           pc.Enabled,
			HasKey:            pc.APIKey != "",
			Key:               MaskKey(pc.APIKey),
			Model:             pc.Model,
			Endpoint:          pc.Endpoint,
			RequestsPerMinute: pc.MaxRequestsPerMinute,
		})
	}
	return out
}

// MaskKey keeps the last four characters of key.
func MaskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", 8) + key[len(key)-4:]
}
