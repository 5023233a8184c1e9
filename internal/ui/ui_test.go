package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhpenta/sdprompt"
)

type fakeGenerator struct {
	result *sdprompt.PromptResult
	err    error
	calls  int
	style  sdprompt.StyleVariant
}

func (f *fakeGenerator) Generate(ctx context.Context, keyword string, style sdprompt.StyleVariant) (*sdprompt.PromptResult, error) {
	f.calls++
	f.style = style
	return f.result, f.err
}

type mapAnnotator struct {
	glosses map[string]string
	active  atomic.Int32
	peak    atomic.Int32
}

func (m *mapAnnotator) Annotate(ctx context.Context, english string) string {
	n := m.active.Add(1)
	defer m.active.Add(-1)
	for {
		p := m.peak.Load()
		if n <= p || m.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	if g, ok := m.glosses[english]; ok {
		return g
	}
	return "(" + english + ")"
}

func TestController_Run(t *testing.T) {
	gen := &fakeGenerator{result: &sdprompt.PromptResult{
		Prompts:  []string{"sad", "crying", "robot"},
		Provider: "gemini",
	}}
	ann := &mapAnnotator{glosses: map[string]string{"sad": "悲しい", "crying": "泣いている"}}
	c := NewController(gen, WithAnnotator(ann), WithConcurrency(2))

	res, err := c.Run(context.Background(), "  悲しい ", "")
	require.NoError(t, err)

	assert.Equal(t, "悲しい", res.Keyword)
	assert.Equal(t, sdprompt.StyleSD15, res.Style)
	assert.Equal(t, sdprompt.StyleSD15, gen.style)
	assert.Equal(t, "gemini", res.Provider)
	assert.Equal(t, []Card{
		{Prompt: "sad", Gloss: "悲しい"},
		{Prompt: "crying", Gloss: "泣いている"},
		{Prompt: "robot", Gloss: "(robot)"},
	}, res.Cards)
	assert.Equal(t, []string{"sad", "crying", "robot"}, res.Prompts())
	assert.LessOrEqual(t, ann.peak.Load(), int32(2))
}

func TestController_Run_EmptyKeyword(t *testing.T) {
	gen := &fakeGenerator{}
	c := NewController(gen)

	_, err := c.Run(context.Background(), "   ", sdprompt.StyleSD15)
	assert.ErrorIs(t, err, sdprompt.ErrEmptyKeyword)
	assert.Equal(t, 0, gen.calls)
	assert.Equal(t, MsgEmptyKeyword, Message(err))
}

func TestController_Run_GeneratorError(t *testing.T) {
	want := &sdprompt.AllProvidersFailedError{Tried: []string{"gemini"}, LastError: errors.New("boom")}
	c := NewController(&fakeGenerator{err: want})

	_, err := c.Run(context.Background(), "猫", sdprompt.StyleSD15)
	assert.ErrorIs(t, err, want)
	assert.Equal(t, MsgSystem, Message(err))
}

func TestController_Run_NoAnnotator(t *testing.T) {
	gen := &fakeGenerator{result: &sdprompt.PromptResult{Prompts: []string{"cat"}, Provider: "claude"}}

	res, err := NewController(gen).Run(context.Background(), "猫", sdprompt.StyleIllustrious)
	require.NoError(t, err)
	assert.Equal(t, []Card{{Prompt: "cat"}}, res.Cards)
	assert.Equal(t, sdprompt.StyleIllustrious, res.Style)
}

type timeoutNetErr struct{ timeout bool }

func (e timeoutNetErr) Error() string   { return "dial tcp: i/o" }
func (e timeoutNetErr) Timeout() bool   { return e.timeout }
func (e timeoutNetErr) Temporary() bool { return false }

var _ net.Error = timeoutNetErr{}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty keyword", sdprompt.ErrEmptyKeyword, MsgEmptyKeyword},
		{"typed timeout", &sdprompt.TimeoutError{Provider: "gemini", Timeout: time.Second}, MsgTimeout},
		{"timeout inside all failed", &sdprompt.AllProvidersFailedError{LastError: &sdprompt.TimeoutError{}}, MsgTimeout},
		{"deadline", fmt.Errorf("wrapped: %w", context.DeadlineExceeded), MsgTimeout},
		{"rate limited", &sdprompt.AllProvidersFailedError{LastError: &sdprompt.RateLimitedError{Provider: "gemini", Limit: 15}}, MsgRateLimited},
		{"net error", fmt.Errorf("openai request failed: %w", timeoutNetErr{}), MsgNetwork},
		{"net timeout", timeoutNetErr{timeout: true}, MsgTimeout},
		{"all failed", &sdprompt.AllProvidersFailedError{LastError: &sdprompt.VendorHTTPError{Status: 500}}, MsgSystem},
		{"no providers", sdprompt.ErrNoProviders, MsgSystem},
		{"vendor", &sdprompt.VendorHTTPError{Provider: "openai", Status: 401}, MsgServer},
		{"empty generation", &sdprompt.EmptyGenerationError{Provider: "claude"}, MsgServer},
		{"text timeout", errors.New("Request Timeout"), MsgTimeout},
		{"text japanese timeout", errors.New("タイムアウトしました"), MsgTimeout},
		{"text rate", errors.New("rate limit reached"), MsgRateLimited},
		{"text network", errors.New("failed to fetch"), MsgNetwork},
		{"text server", errors.New("internal server error"), MsgServer},
		{"generic", errors.New("something odd"), MsgGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}

func TestRender(t *testing.T) {
	res := &Result{
		Keyword:  "悲しい",
		Style:    sdprompt.StyleSD15,
		Provider: "gemini",
		Cards:    []Card{{Prompt: "sad", Gloss: "悲しい"}, {Prompt: "sorrow"}},
	}

	var buf bytes.Buffer
	Render(&buf, res, RenderOptions{NoColor: true})
	out := buf.String()

	assert.Contains(t, out, "「悲しい」 sd15 (gemini)")
	assert.Contains(t, out, " 1. sad\n    悲しい\n")
	assert.Contains(t, out, " 2. sorrow\n")
	assert.NotContains(t, out, "\x1b[")

	buf.Reset()
	Render(&buf, res, RenderOptions{NoColor: true, HideGloss: true})
	assert.NotContains(t, buf.String(), "    悲しい")
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	RenderError(&buf, sdprompt.ErrNoProviders, RenderOptions{NoColor: true})
	assert.Equal(t, MsgSystem+"\n", buf.String())
}

func TestCopyCard(t *testing.T) {
	var copied string
	orig := clipboardWrite
	clipboardWrite = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { clipboardWrite = orig })

	res := &Result{Cards: []Card{{Prompt: "sad"}, {Prompt: "crying"}}}

	prompt, err := CopyCard(res, 2)
	require.NoError(t, err)
	assert.Equal(t, "crying", prompt)
	assert.Equal(t, "crying", copied)

	_, err = CopyCard(res, 3)
	assert.Error(t, err)
	_, err = CopyCard(res, 0)
	assert.Error(t, err)
}

func TestCopy_Unavailable(t *testing.T) {
	orig := clipboardWrite
	clipboardWrite = func(string) error { return ErrClipboardUnavailable }
	t.Cleanup(func() { clipboardWrite = orig })

	err := Copy("x")
	assert.ErrorIs(t, err, ErrClipboardUnavailable)
}

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPage(&buf, Page{
		Keyword: "悲しい",
		Style:   sdprompt.StyleIllustrious,
		Result: &Result{
			Provider: "gemini",
			Cards:    []Card{{Prompt: "sad <b>", Gloss: "悲しい"}},
		},
	})
	require.NoError(t, err)
	html := buf.String()

	assert.Contains(t, html, `value="悲しい"`)
	assert.Contains(t, html, `<option value="illustrious" selected>`)
	assert.Contains(t, html, "sad &lt;b&gt;")
	assert.Contains(t, html, "悲しい</div>")
	assert.False(t, strings.Contains(html, "<b>"), "prompt must be escaped")
}

func TestRenderPage_Error(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, Page{Error: MsgTimeout}))

	assert.Contains(t, buf.String(), `<div class="error">`+MsgTimeout)
	assert.Contains(t, buf.String(), `<option value="sd15" selected>`)
}
