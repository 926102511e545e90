package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agent-platform/worldclock/internal/display"
	"github.com/agent-platform/worldclock/internal/search"
	"github.com/agent-platform/worldclock/internal/ui"
	"github.com/spf13/cobra"
)

var addPick int

var addCmd = &cobra.Command{
	Use:   "add <city or timezone>",
	Short: "Search the catalog and add a city to your clocks",
	Long: `Searches the city catalog by name or timezone (case-insensitive) and
adds the chosen city. With several matches you are asked to pick one;
press Enter without a number to cancel.

Examples:
  worldclock add paris
  worldclock add "new york"
  worldclock add europe --pick 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		flow := search.NewFlow(a.catalog, a.store)
		results, err := flow.Search(strings.Join(args, " "))
		if err != nil {
			if printNotice(cmd, err) {
				return nil
			}
			return err
		}

		choice := 0
		switch {
		case addPick > 0:
			choice = addPick - 1
		case len(results) > 1:
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Boldf("Select a City"))
			display.Cities(out, results)
			reply := prompt(cmd.InOrStdin(), out, fmt.Sprintf("Choose 1-%d (Enter to cancel): ", len(results)))
			if reply == "" {
				fmt.Fprintln(out, ui.Dimf("Cancelled."))
				return nil
			}
			n, err := strconv.Atoi(reply)
			if err != nil {
				n = 0
			}
			choice = n - 1
		}

		city, err := flow.Select(cmd.Context(), results, choice)
		if err != nil {
			if printNotice(cmd, err) {
				return nil
			}
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Greenf("Added %s", city))
		printCities(cmd, a)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().IntVarP(&addPick, "pick", "p", 0, "choose the Nth search result without prompting")
}
