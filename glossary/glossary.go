// Package glossary produces short Japanese glosses for English prompt tags.
//
// Lookups are dictionary based. Prompts the dictionary cannot gloss may be
// sent to an optional Translator; when that is absent or fails, a few
// substring hints are tried before falling back to the parenthesized prompt.
package glossary

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Translator sends a free-form instruction to a language model. The prompt
// manager satisfies it.
type Translator interface {
	Translate(ctx context.Context, instruction string) (string, error)
}

var nonWord = regexp.MustCompile(`[^\w-]`)

// Glossary holds the word and phrase tables. It is safe for concurrent use.
type Glossary struct {
	mu       sync.RWMutex
	words    map[string]string
	phrases  map[string]string
	fallback Translator
	logger   *slog.Logger
}

// Option configures a Glossary.
type Option func(*Glossary)

// WithFallback sets the translator used for prompts with no known word.
func WithFallback(t Translator) Option {
	return func(g *Glossary) {
		g.fallback = t
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Glossary) {
		g.logger = logger
	}
}

// New returns a glossary seeded with the built-in tables.
func New(opts ...Option) *Glossary {
	g := &Glossary{
		words:   make(map[string]string, len(defaultWords)),
		phrases: make(map[string]string, len(defaultPhrases)),
		logger:  slog.Default(),
	}
	for k, v := range defaultWords {
		g.words[k] = v
	}
	for k, v := range defaultPhrases {
		g.phrases[k] = v
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Lookup glosses english from the tables alone. The boolean reports whether
// any part of it was found; when false the returned text is the normalized
// input.
func (g *Glossary) Lookup(english string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(english))
	if normalized == "" {
		return "", false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if gloss, ok := g.phrases[normalized]; ok {
		return gloss, true
	}

	tokens := strings.Fields(normalized)
	translated := false
	for i, tok := range tokens {
		clean := nonWord.ReplaceAllString(tok, "")
		if gloss, ok := g.words[clean]; ok {
			tokens[i] = gloss
			translated = true
			continue
		}
		if gloss, ok := g.words[strings.ReplaceAll(clean, "-", "")]; ok {
			tokens[i] = gloss
			translated = true
			continue
		}
		tokens[i] = clean
	}
	return strings.Join(tokens, " "), translated
}

// Annotate returns a Japanese gloss for english. It never fails: fallback
// errors are logged and the next strategy is used.
func (g *Glossary) Annotate(ctx context.Context, english string) string {
	english = strings.TrimSpace(english)
	if english == "" {
		return ""
	}

	result, ok := g.Lookup(english)
	if ok {
		return result
	}

	if g.fallback != nil {
		instruction := FallbackInstruction(english, strings.Fields(result))
		out, err := g.fallback.Translate(ctx, instruction)
		if err != nil {
			g.logger.Debug("gloss fallback failed", "error", err.Error())
		} else if out = strings.TrimSpace(out); out != "" {
			return out
		}
	}

	for _, h := range hints {
		if strings.Contains(english, h.substr) {
			return h.gloss
		}
	}
	return "(" + english + ")"
}

// FallbackInstruction builds the instruction sent to the Translator.
func FallbackInstruction(original string, untranslated []string) string {
	return fmt.Sprintf("以下の英語プロンプトを自然な日本語に翻訳してください（翻訳のみ、説明不要）:\n%s\n\n※特に以下の未翻訳語に注意: %s",
		original, strings.Join(untranslated, ", "))
}

// Merge adds entries to the tables, replacing existing keys. Keys are
// lower-cased and trimmed.
func (g *Glossary) Merge(words, phrases map[string]string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for k, v := range words {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			g.words[k] = v
		}
	}
	for k, v := range phrases {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			g.phrases[k] = v
		}
	}
}

// File is the YAML layout accepted by LoadFile.
type File struct {
	Words   map[string]string `yaml:"words"`
	Phrases map[string]string `yaml:"phrases"`
}

// LoadFile merges a YAML dictionary into the tables.
func (g *Glossary) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading glossary file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing glossary file %s: %w", path, err)
	}

	g.Merge(f.Words, f.Phrases)
	g.logger.Debug("glossary file loaded",
		"path", path,
		"words", len(f.Words),
		"phrases", len(f.Phrases),
	)
	return nil
}

// Len reports the number of word and phrase entries.
func (g *Glossary) Len() (words, phrases int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.words), len(g.phrases)
}
