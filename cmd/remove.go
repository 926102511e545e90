package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agent-platform/worldclock/internal/ui"
	"github.com/spf13/cobra"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:     "remove <index>",
	Aliases: []string{"rm"},
	Short:   "Remove a city from your clocks",
	Long: `Removes the city at <index>, as shown in brackets by 'watch' and in
the # column of 'list'. Asks for confirmation unless --yes is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index must be a number, got %q", args[0])
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if !removeYes {
			reply := prompt(cmd.InOrStdin(), cmd.OutOrStdout(), "Remove this city from your clocks? [y/N] ")
			if r := strings.ToLower(reply); r != "y" && r != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Dimf("Cancelled."))
				return nil
			}
		}

		city, err := a.store.Remove(cmd.Context(), index)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Greenf("Removed %s", city))
		printCities(cmd, a)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "skip the confirmation prompt")
}
