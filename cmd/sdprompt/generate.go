package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhpenta/sdprompt"
	"github.com/mhpenta/sdprompt/internal/ui"
)

func newGenerateCmd() *cobra.Command {
	var (
		style     string
		copyIndex int
		noColor   bool
		noGloss   bool
		showStats bool
	)

	cmd := &cobra.Command{
		Use:   "generate <keyword>",
		Short: "Generate prompts for a Japanese keyword",
		Long: `Generate five to eight Stable Diffusion prompts for a keyword.

Styles: sd15 (default), illustrious

Examples:
  sdprompt generate 悲しい
  sdprompt generate 可愛い子 --style illustrious --copy 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			opts := []ui.ControllerOption{ui.WithLogger(a.Logger)}
			if !noGloss {
				opts = append(opts, ui.WithAnnotator(a.Glossary))
			}
			ctrl := ui.NewController(a.Manager, opts...)
			renderOpts := ui.RenderOptions{NoColor: noColor, HideGloss: noGloss}

			res, err := ctrl.Run(ctx, strings.Join(args, " "), sdprompt.StyleVariant(style))
			if err != nil {
				a.Logger.Debug("generation failed", "error", err.Error())
				ui.RenderError(cmd.ErrOrStderr(), err, renderOpts)
				return errReported
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(res); err != nil {
					return err
				}
			} else {
				ui.Render(out, res, renderOpts)
			}

			if copyIndex > 0 {
				prompt, err := ui.CopyCard(res, copyIndex)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "copied: %s\n", prompt)
			}

			if showStats {
				printStats(a.Manager.Stats())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", string(sdprompt.StyleSD15), "Prompt style: sd15, illustrious")
	cmd.Flags().IntVar(&copyIndex, "copy", 0, "Copy the N-th prompt to the clipboard")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&noGloss, "no-gloss", false, "Skip Japanese glosses")
	cmd.Flags().BoolVar(&showStats, "stats", false, "Print provider usage after generating")
	return cmd
}

func newTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate <english prompt>",
		Short: "Translate an English prompt to Japanese with the current provider",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			instruction, err := sdprompt.BuildTranslationInstruction(strings.Join(args, " "))
			if err != nil {
				return err
			}
			translation, err := a.Manager.Translate(ctx, instruction)
			if err != nil {
				ui.RenderError(cmd.ErrOrStderr(), err, ui.RenderOptions{})
				return errReported
			}

			if jsonOutput {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"translation": translation})
			}
			fmt.Fprintln(cmd.OutOrStdout(), translation)
			return nil
		},
	}
}

func newAnnotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "annotate <english prompt>",
		Short: "Show the Japanese gloss for an English prompt",
		Long: `Look the prompt up in the built-in dictionary (plus glossary.file).
When glossary.fallback is enabled, unknown words are sent to the current provider.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			english := strings.Join(args, " ")
			gloss := a.Glossary.Annotate(ctx, english)

			if jsonOutput {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(ui.Card{Prompt: english, Gloss: gloss})
			}
			fmt.Fprintln(cmd.OutOrStdout(), gloss)
			return nil
		},
	}
}

func printStats(stats sdprompt.Stats) {
	enc := json.NewEncoder(os.Stderr)
	enc.SetIndent("", "  ")
	_ = enc.Encode(stats)
}
