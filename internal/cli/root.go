package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
	"github.com/IAG-Ent/build-your-own-radar/internal/infra/config"
	"github.com/IAG-Ent/build-your-own-radar/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "radar",
		Short:        "Build a validated tech-radar model from a CSV, JSON, or spreadsheet source",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable verbose logging to stderr")
	cmd.PersistentFlags().String("config", "", "path to radar.yaml (optional)")

	cmd.AddCommand(ingestCmd())
	cmd.AddCommand(sheetsCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

// setup installs the logger and loads configuration for a subcommand run.
func setup(cmd *cobra.Command) (domain.Config, func(), error) {
	debug, _ := cmd.Flags().GetBool("debug")
	cleanup := logger.Setup(logger.Config{Debug: debug})

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		cleanup()
		return domain.Config{}, func() {}, err
	}

	return cfg, cleanup, nil
}
