package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/usestring/wpjson-seven/pkg/mcpsrv"
)

func serveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion tools over MCP on stdio",
		Long: `serve runs a Model Context Protocol server on stdin/stdout exposing the
wpjson_list_routes, wpjson_convert and wpjson_validate tools. Logs go to
stderr or LOG_FILE.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := mcpsrv.NewServer(a.client(cmd),
				mcpsrv.WithConfig(a.cfg),
				mcpsrv.WithVersion(a.version),
			)
			if err != nil {
				return err
			}
			defer server.Close()

			slog.Info("starting MCP server on stdio", slog.String("version", a.version))
			if err := server.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			slog.Info("server stopped")
			return nil
		},
	}
}
