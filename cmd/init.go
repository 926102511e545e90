package cmd

import (
	"fmt"
	"os"

	"github.com/agent-platform/worldclock/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize worldclock configuration",
	Long:  `Creates the configuration directory and default config file at ~/.worldclock/config.yaml.`,
	// Skip the root setup: init must work before a config file exists.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			var err error
			path, err = config.DefaultConfigPath()
			if err != nil {
				return fmt.Errorf("determine config path: %w", err)
			}
		}

		// If config already exists, merge with defaults to pick up new keys
		if _, err := os.Stat(path); err == nil {
			existing, loadErr := config.Load(path)
			if loadErr != nil {
				return fmt.Errorf("load existing config: %w", loadErr)
			}
			if err := config.SaveWithComments(path, existing); err != nil {
				return fmt.Errorf("update config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration updated at %s (merged new defaults)\n", path)
			return nil
		}

		def := config.DefaultConfig()
		if err := config.SaveWithComments(path, &def); err != nil {
			return fmt.Errorf("create config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Configuration initialized at %s\n", path)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Next steps:")
		fmt.Fprintln(out, "  1. Add a city:        worldclock add paris")
		fmt.Fprintln(out, "  2. Watch the clocks:  worldclock")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
