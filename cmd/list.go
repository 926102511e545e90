package cmd

import (
	"time"

	"github.com/agent-platform/worldclock/internal/clock"
	"github.com/agent-platform/worldclock/internal/display"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print the current time in each active city",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		printCities(cmd, a)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func printCities(cmd *cobra.Command, a *app) {
	cards := clock.Project(a.store.Snapshot(), time.Now(), clock.FormatFor(cfg.Hour12))
	display.Table(cmd.OutOrStdout(), cards)
}
