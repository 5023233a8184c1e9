package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mhpenta/sdprompt/internal/config"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show provider configuration and key checks",
		Long: `Show every provider in rotation order with its model, endpoint and rate
limit, and check the shape of each enabled provider's API key. Keys are masked
and no vendor is contacted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Providers []config.ProviderInfo `json:"providers"`
					Keys      []config.KeyStatus    `json:"keys"`
				}{cfg.Info(), cfg.ValidateKeys()})
			}

			printStatus(cmd.OutOrStdout(), cfg)
			return nil
		},
	}
}

func printStatus(w io.Writer, cfg *config.Config) {
	bold := color.New(color.Bold)
	dim := color.New(color.FgHiBlack)

	bold.Fprintln(w, "Providers")
	for _, p := range cfg.Info() {
		state := dim.Sprint("disabled")
		if p.Enabled {
			state = color.GreenString("enabled")
		}
		fmt.Fprintf(w, "  %-8s %s  %s  %d rpm\n", p.Name, state, p.Model, p.RequestsPerMinute)
		if p.Key != "" {
			dim.Fprintf(w, "           key %s\n", p.Key)
		}
	}

	keys := cfg.ValidateKeys()
	if len(keys) == 0 {
		fmt.Fprintln(w)
		color.New(color.FgYellow).Fprintln(w, "No providers enabled.")
		return
	}

	fmt.Fprintln(w)
	bold.Fprintln(w, "Keys")
	for _, k := range keys {
		var state string
		switch k.State {
		case config.KeyValid:
			state = color.GreenString(string(k.State))
		case config.KeyInvalid:
			state = color.RedString(string(k.State))
		default:
			state = color.YellowString(string(k.State))
		}
		line := fmt.Sprintf("  %-8s %s", k.Provider, state)
		if k.Message != "" {
			line += "  " + k.Message
		}
		fmt.Fprintln(w, line)
	}
}
