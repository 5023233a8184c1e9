// Package ui turns a keyword into display-ready prompt cards and renders
// them for the terminal and the browser.
package ui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mhpenta/sdprompt"
)

// DefaultAnnotateConcurrency bounds concurrent gloss lookups per run.
const DefaultAnnotateConcurrency = 4

// Generator produces prompt candidates. *sdprompt.Manager satisfies it.
type Generator interface {
	Generate(ctx context.Context, keyword string, style sdprompt.StyleVariant) (*sdprompt.PromptResult, error)
}

// Annotator produces a Japanese gloss. *glossary.Glossary satisfies it.
type Annotator interface {
	Annotate(ctx context.Context, english string) string
}

// Card is one displayed prompt.
type Card struct {
	Prompt string `json:"prompt"`
	Gloss  string `json:"gloss,omitempty"`
}

// Result is everything needed to render one run.
type Result struct {
	Keyword  string                `json:"keyword"`
	Style    sdprompt.StyleVariant `json:"style"`
	Provider string                `json:"provider"`
	Cards    []Card                `json:"cards"`
	Duration time.Duration         `json:"-"`
}

// Prompts returns the card prompts in order.
func (r *Result) Prompts() []string {
	out := make([]string, len(r.Cards))
	for i, c := range r.Cards {
		out[i] = c.Prompt
	}
	return out
}

// Controller runs generation followed by annotation.
type Controller struct {
	gen         Generator
	annotator   Annotator
	concurrency int
	logger      *slog.Logger
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithAnnotator sets the gloss source. Without one, cards carry no gloss.
func WithAnnotator(a Annotator) ControllerOption {
	return func(c *Controller) {
		c.annotator = a
	}
}

// WithConcurrency bounds concurrent annotations.
func WithConcurrency(n int) ControllerOption {
	return func(c *Controller) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates a Controller over gen.
func NewController(gen Generator, opts ...ControllerOption) *Controller {
	c := &Controller{
		gen:         gen,
		concurrency: DefaultAnnotateConcurrency,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run generates prompts for keyword and annotates each one. Annotation never
// fails the run; a prompt without a gloss is still shown.
func (c *Controller) Run(ctx context.Context, keyword string, style sdprompt.StyleVariant) (*Result, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, sdprompt.ErrEmptyKeyword
	}
	style = style.Resolve()

	res, err := c.gen.Generate(ctx, keyword, style)
	if err != nil {
		return nil, err
	}

	cards := make([]Card, len(res.Prompts))
	for i, p := range res.Prompts {
		cards[i] = Card{Prompt: p}
	}

	if c.annotator != nil {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.concurrency)
		for i := range cards {
			g.Go(func() error {
				cards[i].Gloss = c.annotator.Annotate(gctx, cards[i].Prompt)
				return nil
			})
		}
		_ = g.Wait()
	}

	c.logger.Debug("run completed",
		"provider", res.Provider,
		"cards", len(cards),
	)

	return &Result{
		Keyword:  keyword,
		Style:    style,
		Provider: res.Provider,
		Cards:    cards,
		Duration: res.Duration,
	}, nil
}
