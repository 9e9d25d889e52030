package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/reachout/internal/transport/mcp"
	"github.com/sandevgo/reachout/pkg/srv"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the MCP tools over stdio",
	Long: `Serves search_content, generate_message, message_history and api_usage over
stdio, for assistants that launch reach as an MCP server. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ctx, flushLog := setupLoggerTo(ctx, os.Stderr)
		defer flushLog()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}

		return srv.Run(ctx, []srv.Service{
			srv.NewCleanup(a.Close),
			mcp.NewServer(a.svc, version),
		})
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
