package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/reachout/pkg/log"
	"github.com/sandevgo/reachout/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the enabled front ends (Telegram, MCP)",
	Long:  `Starts the front ends enabled with REACH_ENABLE_TELEGRAM and REACH_ENABLE_MCP and runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// stdout belongs to the MCP protocol when it is enabled
		ctx, flushLog := setupLoggerTo(ctx, os.Stderr)
		defer flushLog()

		logger := log.FromCtx(ctx)

		a, err := newApp(ctx)
		if err != nil {
			return err
		}

		services, err := a.services(ctx)
		if err != nil {
			_ = a.Close()
			return err
		}

		logger.Info().Str("version", version).Msg("starting reach")
		if err := srv.Run(ctx, services); err != nil {
			return err
		}
		logger.Info().Msg("reach has been shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
