package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhpenta/sdprompt/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	jsonOutput = false
	configPath = ""

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func setKeys(t *testing.T, gemini, openai, claude string) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", gemini)
	t.Setenv("OPENAI_API_KEY", openai)
	t.Setenv("CLAUDE_API_KEY", claude)
	for _, name := range []string{"GEMINI", "OPENAI", "CLAUDE"} {
		t.Setenv("SDPROMPT_PROVIDERS_"+name+"_API_KEY", "")
		t.Setenv("SDPROMPT_PROVIDERS_"+name+"_ENABLED", "")
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sdprompt version dev")
}

func TestStatusCmd_JSON(t *testing.T) {
	setKeys(t, "AIzaSyExampleKey123", "bad-key", "")

	out, err := execute(t, "status", "--json")
	require.NoError(t, err)

	var got struct {
		Providers []config.ProviderInfo `json:"providers"`
		Keys      []config.KeyStatus    `json:"keys"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	require.Len(t, got.Providers, 3)
	assert.Equal(t, "gemini", got.Providers[0].Name)
	assert.True(t, got.Providers[0].Enabled)
	assert.NotContains(t, out, "AIzaSyExampleKey123")
	assert.False(t, got.Providers[2].Enabled)

	require.Len(t, got.Keys, 2)
	assert.Equal(t, config.KeyValid, got.Keys[0].State)
	assert.Equal(t, config.KeyInvalid, got.Keys[1].State)
}

func TestPrintStatus(t *testing.T) {
	color.NoColor = true
	setKeys(t, "", "", "")

	cfg, err := config.Load("")
	require.NoError(t, err)

	var buf bytes.Buffer
	printStatus(&buf, cfg)
	assert.Contains(t, buf.String(), "gemini")
	assert.Contains(t, buf.String(), "disabled")
	assert.Contains(t, buf.String(), "No providers enabled.")
}

func TestGenerateCmd_RequiresKeyword(t *testing.T) {
	_, err := execute(t, "generate")
	assert.Error(t, err)
}
