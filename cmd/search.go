package cmd

import (
	"strings"

	"github.com/agent-platform/worldclock/internal/cities"
	"github.com/agent-platform/worldclock/internal/display"
	"github.com/agent-platform/worldclock/internal/search"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search the city catalog by name or timezone",
	RunE: func(cmd *cobra.Command, args []string) error {
		flow := search.NewFlow(cities.NewCatalog(), nil)
		results, err := flow.Search(strings.Join(args, " "))
		if err != nil {
			if printNotice(cmd, err) {
				return nil
			}
			return err
		}
		display.Cities(cmd.OutOrStdout(), results)
		return nil
	},
}

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List every city in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		display.Cities(cmd.OutOrStdout(), cities.NewCatalog().All())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(zonesCmd)
}
