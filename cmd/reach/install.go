package main

import (
	"path/filepath"

	"github.com/sandevgo/reachout/internal/config"
	"github.com/sandevgo/reachout/internal/service/installer"
	"github.com/sandevgo/reachout/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Create the configuration with a setup wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		logger := log.FromCtx(ctx)

		if _, err := installer.RunWizard(); err != nil {
			return err
		}

		runtimePath := config.GetRuntimePath()
		logger.Info().
			Str("env", filepath.Join(runtimePath, ".env")).
			Str("rules", filepath.Join(runtimePath, "rules.yaml")).
			Msg("configuration written")
		logger.Info().Msg("setup complete, try 'reach generate \"Jane Doe\"' or 'reach chat'")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
