// Package main provides the sdprompt CLI entrypoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mhpenta/sdprompt/internal/app"
	"github.com/mhpenta/sdprompt/internal/config"
	"github.com/mhpenta/sdprompt/internal/logger"
)

// Set at build time with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configPath string
	jsonOutput bool
)

// errReported marks an error the command already printed for the user.
var errReported = errors.New("reported")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sdprompt",
		Short: "Turn a Japanese keyword into Stable Diffusion prompts",
		Long: `sdprompt asks Gemini, OpenAI or Claude for short English Stable Diffusion
prompts built around a Japanese keyword, rotating between providers on failure.

Commands:
  generate    Generate prompts for a keyword
  translate   Translate an English prompt to Japanese
  annotate    Show the dictionary gloss for an English prompt
  serve       Run the HTTP proxy and web page
  status      Show provider configuration and key checks

API keys are read from GEMINI_API_KEY, OPENAI_API_KEY and CLAUDE_API_KEY,
or from SDPROMPT_PROVIDERS_<NAME>_API_KEY and the config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./sdprompt.yaml or ~/.config/sdprompt/sdprompt.yaml)")
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	root.AddCommand(
		newGenerateCmd(),
		newTranslateCmd(),
		newAnnotateCmd(),
		newServeCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadApp loads configuration, installs the logger on stderr and builds
// the manager and glossary.
func loadApp(ctx context.Context) (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := logger.Setup(cfg.Server, os.Stderr)
	return app.New(ctx, cfg, log)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sdprompt version %s\n", version)
			fmt.Fprintf(out, "  commit:    %s\n", commit)
			fmt.Fprintf(out, "  built:     %s\n", date)
		},
	}
}
