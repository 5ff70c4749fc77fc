package cli

import (
	"github.com/spf13/cobra"

	"github.com/slidesmith/slidesmith/internal/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve exposes the parse, render, and fit operations over HTTP.

Endpoints:
  POST /v1/parse    Parse diagram source, returns nodes and edges
  POST /v1/render   Render diagram source to SVG, PNG, or DOT
  POST /v1/fit      Auto-fit text, returns the fitting decision
  GET  /healthz     Liveness check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(c.Logger)
			printInfo("Listening on %s", addr)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")

	return cmd
}
