// Package cli wires the command tree: the bare command runs the interactive
// viewer, the daemon subcommands drive the background collector.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/varkas/amptop/internal/battery"
	"codeberg.org/varkas/amptop/internal/config"
	"codeberg.org/varkas/amptop/internal/history"
	"codeberg.org/varkas/amptop/internal/logger"
	"codeberg.org/varkas/amptop/internal/tui"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "amptop",
	Short:         "Interactive battery statistics",
	Long:          "amptop shows live power-source telemetry and the history collected by its background daemon.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.LogLevel = lvl
		}

		return logger.Init(cfg.LogLevel, os.Stderr, logger.IsService())
	},
	RunE: runViewer,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warning, error)")
	rootCmd.Flags().IntP("delay", "d", 0, "seconds between viewer refreshes")
}

func runViewer(cmd *cobra.Command, _ []string) error {
	if delay, _ := cmd.Flags().GetInt("delay"); delay > 0 {
		cfg.Delay = delay
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}

	repo, err := history.NewRepository(history.Config{DBPath: cfg.DBPath()})
	if err != nil {
		return err
	}
	defer repo.Close()

	return tui.Run(cfg, provider, repo)
}

// newProvider selects the hardware telemetry backend from configuration.
func newProvider(cfg *config.Config) (battery.Provider, error) {
	if cfg.Provider == "upower" {
		return battery.NewUPowerProvider()
	}

	return battery.NewSysfsProvider(), nil
}
