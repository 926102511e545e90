// Package display handles terminal rendering of world clocks with live updates.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/agent-platform/worldclock/internal/cities"
	"github.com/agent-platform/worldclock/internal/clock"
	"github.com/agent-platform/worldclock/internal/ui"
	"github.com/olekukonko/tablewriter"
)

const ruleWidth = 64

// Render writes one full frame of the live display for the given cards.
func Render(w io.Writer, cards []clock.Card, now time.Time) {
	fmt.Fprint(w, ui.ClearScreen+ui.CursorHome)
	fmt.Fprintf(w, "%s %s\n", ui.Boldf("🌍 World Clock"), ui.Dimf("%s", now.UTC().Format("(UTC 2006-01-02 15:04:05)")))
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))

	if len(cards) == 0 {
		fmt.Fprintln(w, ui.Dimf("  No cities yet. Add one with: worldclock add <city>"))
	}

	for _, c := range cards {
		if c.Err != nil {
			fmt.Fprintf(w, "  %s %-16s %s\n", ui.Dimf("[%d]", c.Index), c.Name, ui.Dimf("error loading timezone"))
			continue
		}
		fmt.Fprintf(w, "  %s %s %s  %s\n",
			ui.Dimf("[%d]", c.Index),
			ui.Yellowf("%-16s", c.Name),
			ui.Boldf("%s", c.Time),
			ui.Dimf("%s  %s", c.Date, c.Offset),
		)
		fmt.Fprintf(w, "      %s\n", ui.Dimf("%s", c.Timezone))
	}

	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
	fmt.Fprintln(w, ui.Dimf("Press Ctrl+C to exit"))
}

// Goodbye clears the screen and restores the cursor after the live display.
func Goodbye(w io.Writer) {
	fmt.Fprint(w, ui.ClearScreen+ui.CursorHome+ui.ShowCursor)
	fmt.Fprintln(w, "Goodbye!")
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetColumnSeparator("  ")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	return table
}

// Table writes a static table of cards, one row per active city.
func Table(w io.Writer, cards []clock.Card) {
	table := newTable(w, []string{"#", "City", "Time", "Date", "Offset", "Timezone"})
	for _, c := range cards {
		if c.Err != nil {
			table.Append([]string{strconv.Itoa(c.Index), c.Name, "-", "error loading timezone", "-", c.Timezone})
			continue
		}
		table.Append([]string{
			strconv.Itoa(c.Index),
			c.Name,
			c.Time,
			c.Date,
			ui.OffsetColor(c.Offset, c.OffsetSeconds),
			c.Timezone,
		})
	}
	table.Render()
}

// Cities writes a numbered table of cities, as used for search results and
// the catalog listing. Numbers start at 1.
func Cities(w io.Writer, list []cities.City) {
	table := newTable(w, []string{"#", "City", "Timezone"})
	for i, c := range list {
		table.Append([]string{strconv.Itoa(i + 1), c.Name, c.Timezone})
	}
	table.Render()
}
