package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agent-platform/worldclock/internal/cities"
	"github.com/agent-platform/worldclock/internal/convert"
	"github.com/agent-platform/worldclock/internal/ui"
	"github.com/spf13/cobra"
)

var (
	convertFrom    string
	convertTo      string
	convertAnyZone bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [YYYY-MM-DDTHH:MM]",
	Short: "Convert a date/time from one timezone to another",
	Long: `Reads the date/time as wall-clock time in --from and prints the same
instant as wall-clock time in --to, to the minute. Without a date/time the
current local time is used.

Examples:
  worldclock convert                                   # now, New York -> London
  worldclock convert 2024-06-15T12:00 --to Asia/Tokyo
  worldclock convert "2024-06-15 09:30" -f Europe/Paris -t America/Chicago`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from := convertFrom
		if from == "" {
			from = cfg.Converter.From
		}
		to := convertTo
		if to == "" {
			to = cfg.Converter.To
		}

		catalog := cities.NewCatalog()
		fromLabel, err := zoneLabel(catalog, from)
		if err != nil {
			return err
		}
		toLabel, err := zoneLabel(catalog, to)
		if err != nil {
			return err
		}

		input := convert.Format(convert.Naive(time.Now()))
		if len(args) == 1 {
			input = args[0]
		}

		result, err := convert.ConvertString(input, from, to)
		if err != nil {
			if errors.Is(err, convert.ErrInvalidInput) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Notice(strings.TrimPrefix(err.Error(), convert.ErrInvalidInput.Error()+": ")))
				return nil
			}
			return err
		}

		source, _ := convert.Parse(input)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "  %s  %s\n", ui.Boldf("%s", convert.Format(source)), ui.Dimf("%s", fromLabel))
		fmt.Fprintf(out, "→ %s  %s\n", ui.Boldf("%s", result), ui.Dimf("%s", toLabel))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertFrom, "from", "f", "", "source timezone (default from config: America/New_York)")
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "", "target timezone (default from config: Europe/London)")
	convertCmd.Flags().BoolVar(&convertAnyZone, "any-zone", false, "accept any IANA timezone, not only catalog cities")
}

// zoneLabel names a zone for output. Zones outside the catalog are rejected
// unless --any-zone is set.
func zoneLabel(catalog *cities.Catalog, zone string) (string, error) {
	city, err := catalog.Lookup(zone)
	if err == nil {
		return city.String(), nil
	}
	if !convertAnyZone {
		return "", fmt.Errorf("%q is not a catalog timezone (see 'worldclock zones', or pass --any-zone)", zone)
	}
	return zone, nil
}
