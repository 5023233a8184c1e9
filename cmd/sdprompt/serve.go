package main

import (
	"github.com/spf13/cobra"

	"github.com/mhpenta/sdprompt/internal/server"
	"github.com/mhpenta/sdprompt/internal/ui"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP proxy and web page",
		Long: `Serve POST /generate, POST /translate, GET /stats, GET /health and the
web page at /. Stops gracefully on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if port > 0 {
				a.Config.Server.Port = port
			}

			page := ui.NewController(a.Manager,
				ui.WithAnnotator(a.Glossary),
				ui.WithLogger(a.Logger),
			)
			return server.New(a.Config.Server, a.Manager, page, a.Logger).Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (overrides server.port)")
	return cmd
}
