package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"codeberg.org/varkas/amptop/internal/collector"
	"codeberg.org/varkas/amptop/internal/config"
	"codeberg.org/varkas/amptop/internal/daemon"
	"codeberg.org/varkas/amptop/internal/history"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Manage the battery monitoring daemon",
}

var daemonStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the daemon to collect battery statistics in the background",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := applyIntervalFlag(cmd); err != nil {
			return err
		}

		if err := daemon.NewSupervisor(cfg).Start(); err != nil {
			return err
		}
		fmt.Println("Daemon started successfully")

		return nil
	},
}

var daemonStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running daemon",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := daemon.NewSupervisor(cfg).Stop(); err != nil {
			return err
		}
		fmt.Println("Daemon stopped successfully")

		return nil
	},
}

var daemonStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check if daemon is currently running",
	Run: func(_ *cobra.Command, _ []string) {
		if daemon.NewSupervisor(cfg).IsRunning() {
			fmt.Println("Daemon is running")
		} else {
			fmt.Println("Daemon is not running")
		}
	},
}

// daemonRunCmd is the detached child spawned by `daemon start`. It records
// its own pid and never returns until terminated.
var daemonRunCmd = &cobra.Command{
	Use:    "run",
	Hidden: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := applyIntervalFlag(cmd); err != nil {
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

		coll := collector.New(provider, repo, collector.Config{
			Interval:        time.Duration(cfg.Interval) * time.Second,
			MaxReadFailures: cfg.MaxReadFailures,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return daemon.NewSupervisor(cfg).Run(ctx, coll.Run)
	},
}

func applyIntervalFlag(cmd *cobra.Command) error {
	if cmd.Flags().Changed("interval") {
		interval, _ := cmd.Flags().GetInt("interval")
		cfg.Interval = interval
	}

	return cfg.Validate()
}

func init() {
	daemonStartCmd.Flags().IntP("interval", "i", config.DefaultInterval,
		"interval in seconds between battery readings (recommended: 60-300)")
	daemonRunCmd.Flags().IntP("interval", "i", config.DefaultInterval,
		"interval in seconds between battery readings")

	daemonCmd.AddCommand(daemonStartCmd, daemonStopCmd, daemonStatusCmd, daemonRunCmd)
	rootCmd.AddCommand(daemonCmd)
}
