package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agent-platform/worldclock/internal/cities"
	"github.com/agent-platform/worldclock/internal/clock"
	"github.com/agent-platform/worldclock/internal/display"
	"github.com/agent-platform/worldclock/internal/ui"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [city...]",
	Short: "Show live clocks for your cities",
	Long: `Displays the current time and date in each active city, refreshed
every second. Press Ctrl+C to exit.

Naming cities shows just those for this run and leaves your list as is:
  worldclock watch london tokyo "new york"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// fixedList is a clock source for cities named on the command line.
type fixedList []cities.City

func (l fixedList) Snapshot() []cities.City { return l }

func runWatch(cmd *cobra.Command, args []string) error {
	// Set up context with signal handling for clean exit
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	var src clock.Source
	if len(args) > 0 {
		list, err := cities.NewCatalog().Parse(args)
		if err != nil {
			return err
		}
		src = fixedList(list)
	} else {
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()
		src = a.store
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, ui.HideCursor)

	loop := clock.NewLoop(src, clock.FormatFor(cfg.Hour12), func(now time.Time, cards []clock.Card) {
		display.Render(out, cards, now)
	})
	loop.Interval = cfg.RefreshInterval

	err := loop.Run(ctx)
	display.Goodbye(out)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
