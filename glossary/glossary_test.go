package glossary

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type stubTranslator struct {
	reply string
	err   error
	calls int
	last  string
}

func (s *stubTranslator) Translate(ctx context.Context, instruction string) (string, error) {
	s.calls++
	s.last = instruction
	return s.reply, s.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLookup(t *testing.T) {
	g := New()

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"single word", "smile", "笑顔", true},
		{"case and space", "  Smile ", "笑顔", true},
		{"phrase", "Gentle Smile", "優しい笑顔", true},
		{"word by word", "sad crying", "悲しい 泣いている", true},
		{"partial", "sad robot", "悲しい robot", true},
		{"punctuation stripped", "happy!", "幸せな", true},
		{"hyphenated", "grief-stricken", "深い悲しみの", true},
		{"hyphen removed", "close-up", "クローズアップ", true},
		{"unknown", "spaceship", "spaceship", false},
		{"empty", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.Lookup(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Lookup(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAnnotate_DictionaryHitSkipsFallback(t *testing.T) {
	fallback := &stubTranslator{reply: "unused"}
	g := New(WithFallback(fallback), WithLogger(quietLogger()))

	if got := g.Annotate(context.Background(), "smile"); got != "笑顔" {
		t.Errorf("got %q, want 笑顔", got)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback called %d times", fallback.calls)
	}
}

func TestAnnotate_Deterministic(t *testing.T) {
	g := New()
	ctx := context.Background()

	for _, input := range []string{"sad face", "spaceship", "robot face", "blue hair"} {
		first := g.Annotate(ctx, input)
		if second := g.Annotate(ctx, input); first != second {
			t.Errorf("Annotate(%q) not deterministic: %q vs %q", input, first, second)
		}
	}
}

func TestAnnotate_Fallback(t *testing.T) {
	fallback := &stubTranslator{reply: "  宇宙船  "}
	g := New(WithFallback(fallback), WithLogger(quietLogger()))

	got := g.Annotate(context.Background(), "spaceship")
	if got != "宇宙船" {
		t.Errorf("got %q, want 宇宙船", got)
	}
	if !strings.Contains(fallback.last, "spaceship") || !strings.Contains(fallback.last, "未翻訳語") {
		t.Errorf("instruction = %q", fallback.last)
	}
}

func TestAnnotate_FallbackFailureUsesHints(t *testing.T) {
	tests := []struct {
		name     string
		fallback *stubTranslator
		input    string
		want     string
	}{
		{"error then hint", &stubTranslator{err: errors.New("down")}, "spacefaces", "顔の表情"},
		{"blank reply then hint", &stubTranslator{reply: "  "}, "robotic expressions", "表情"},
		{"eyes hint", &stubTranslator{err: errors.New("down")}, "starryeyes", "目の表現"},
		{"hair hint", &stubTranslator{err: errors.New("down")}, "longhair", "髪の表現"},
		{"smile hint", &stubTranslator{err: errors.New("down")}, "smiles", "笑顔"},
		{"parenthesized", &stubTranslator{err: errors.New("down")}, "spaceship", "(spaceship)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(WithFallback(tt.fallback), WithLogger(quietLogger()))
			if got := g.Annotate(context.Background(), tt.input); got != tt.want {
				t.Errorf("Annotate(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if tt.fallback.calls != 1 {
				t.Errorf("fallback calls = %d, want 1", tt.fallback.calls)
			}
		})
	}
}

func TestAnnotate_NoFallback(t *testing.T) {
	g := New()

	if got := g.Annotate(context.Background(), "Spaceship"); got != "(Spaceship)" {
		t.Errorf("got %q", got)
	}
	if got := g.Annotate(context.Background(), ""); got != "" {
		t.Errorf("empty input gave %q", got)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glossary.yaml")
	content := `words:
  spaceship: 宇宙船
  Smile: にっこり
phrases:
  starry sky: 星空
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	g := New(WithLogger(quietLogger()))
	wordsBefore, phrasesBefore := g.Len()

	if err := g.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	words, phrases := g.Len()
	if words != wordsBefore+1 || phrases != phrasesBefore+1 {
		t.Errorf("len = %d/%d, want %d/%d", words, phrases, wordsBefore+1, phrasesBefore+1)
	}
	if got, _ := g.Lookup("spaceship"); got != "宇宙船" {
		t.Errorf("spaceship = %q", got)
	}
	if got, _ := g.Lookup("smile"); got != "にっこり" {
		t.Errorf("override smile = %q", got)
	}
	if got, _ := g.Lookup("Starry Sky"); got != "星空" {
		t.Errorf("starry sky = %q", got)
	}

	// Merged entries do not leak into other glossaries.
	if got, _ := New().Lookup("smile"); got != "笑顔" {
		t.Errorf("default table modified: %q", got)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	g := New()

	if err := g.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("words: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := g.LoadFile(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
