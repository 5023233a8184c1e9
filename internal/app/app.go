// Package app wires configuration, providers, the manager and the glossary
// together for the CLI and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mhpenta/sdprompt"
	"github.com/mhpenta/sdprompt/glossary"
	"github.com/mhpenta/sdprompt/internal/config"
	"github.com/mhpenta/sdprompt/provider/registry"
)

// App bundles the long-lived components.
type App struct {
	Config   *config.Config
	Manager  *sdprompt.Manager
	Glossary *glossary.Glossary
	Logger   *slog.Logger
}

// New builds the manager and glossary from cfg using the built-in providers.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	return NewWithRegistry(ctx, cfg, logger, registry.Default())
}

// NewWithRegistry is New with a caller-supplied provider registry.
func NewWithRegistry(ctx context.Context, cfg *config.Config, logger *slog.Logger, reg *registry.Registry) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	manager := NewManager(ctx, cfg, logger, reg)

	gloss, err := NewGlossary(cfg, manager, logger)
	if err != nil {
		_ = manager.Close()
		return nil, err
	}

	return &App{
		Config:   cfg,
		Manager:  manager,
		Glossary: gloss,
		Logger:   logger,
	}, nil
}

// NewManager registers every enabled provider in configured order. A
// provider that cannot be built is logged and skipped; the manager reports
// ErrNoProviders on use if none remain.
func NewManager(ctx context.Context, cfg *config.Config, logger *slog.Logger, reg *registry.Registry) *sdprompt.Manager {
	manager := sdprompt.NewManager(
		sdprompt.WithLogger(logger),
		sdprompt.WithTimeout(cfg.Manager.Timeout),
		sdprompt.WithMaxRetries(cfg.Manager.MaxRetries),
		sdprompt.WithBackoffBase(cfg.Manager.BackoffBase),
	)

	for _, pc := range cfg.EnabledProviders() {
		provider, err := reg.Build(ctx, pc)
		if err != nil {
			logger.Warn("skipping provider",
				"provider", pc.Name.String(),
				"error", err.Error(),
			)
			continue
		}
		manager.Register(provider, pc.MaxRequestsPerMinute)
		logger.Debug("provider registered",
			"provider", pc.Name.String(),
			"model", pc.Model,
			"requests_per_minute", pc.MaxRequestsPerMinute,
		)
	}

	if len(manager.Providers()) == 0 {
		logger.Warn("no providers enabled; set GEMINI_API_KEY, OPENAI_API_KEY or CLAUDE_API_KEY")
	}
	return manager
}

// NewGlossary builds the glossary, merging the configured file and wiring
// the manager as fallback translator when enabled.
func NewGlossary(cfg *config.Config, manager *sdprompt.Manager, logger *slog.Logger) (*glossary.Glossary, error) {
	opts := []glossary.Option{glossary.WithLogger(logger)}
	if cfg.Glossary.Fallback && manager != nil {
		opts = append(opts, glossary.WithFallback(manager))
	}

	g := glossary.New(opts...)
	if cfg.Glossary.File != "" {
		if err := g.LoadFile(cfg.Glossary.File); err != nil {
			return nil, fmt.Errorf("loading glossary: %w", err)
		}
	}
	return g, nil
}

// Close releases provider resources.
func (a *App) Close() error {
	if a == nil || a.Manager == nil {
		return nil
	}
	if err := a.Manager.Close(); err != nil {
		return errors.Join(errors.New("closing providers"), err)
	}
	return nil
}
