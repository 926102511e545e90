package cmd

import (
	"fmt"
	"os"

	"github.com/agent-platform/worldclock/internal/config"
	"github.com/agent-platform/worldclock/internal/logger"
	"github.com/agent-platform/worldclock/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
	noColor  bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "worldclock [city...]",
	Short: "World clocks and timezone conversion in your terminal",
	Long: `worldclock shows live clocks for the cities you pick and converts
a date/time between timezones. Your city list is saved between runs.

Usage:
  worldclock                 Live clocks (same as 'watch')
  worldclock list            Print the current time in each city
  worldclock add <city>      Search the catalog and add a city
  worldclock remove <index>  Remove a city by its [index]
  worldclock convert         Convert a date/time between zones
  worldclock zones           List every city in the catalog`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd, args)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if zerolog.GlobalLevel() <= zerolog.DebugLevel {
			logger.ErrorWithStack(err)
		}
		fmt.Fprintln(os.Stderr, ui.Redf("Error: %v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.worldclock/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// setup resolves configuration in order: defaults, config file, .env and
// environment, then flags.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	loaded, _, err := config.LoadOrCreate(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := config.ApplyEnv(loaded); err != nil {
		return err
	}
	if logLevel != "" {
		loaded.LogLevel = logLevel
	}
	if noColor {
		loaded.Color = false
	}
	if err := config.Validate(loaded); err != nil {
		return err
	}

	if !loaded.Color {
		ui.SetColor(false)
	}
	logger.Init(os.Stderr, loaded.LogLevel, ui.ColorEnabled())

	cfg = loaded
	return nil
}
