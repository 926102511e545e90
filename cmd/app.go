package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/agent-platform/worldclock/internal/activecity"
	"github.com/agent-platform/worldclock/internal/cities"
	"github.com/agent-platform/worldclock/internal/kv"
	"github.com/agent-platform/worldclock/internal/search"
	"github.com/agent-platform/worldclock/internal/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app wires the catalog, the kv backend and the active city store for one
// command invocation.
type app struct {
	catalog *cities.Catalog
	kv      kv.Store
	store   *activecity.Store
}

func openApp(ctx context.Context) (*app, error) {
	store, err := kv.Open(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	catalog := cities.NewCatalog()
	a := &app{
		catalog: catalog,
		kv:      store,
		store:   activecity.New(store, catalog),
	}
	if _, err := a.store.Load(ctx); err != nil {
		store.Close()
		return nil, err
	}
	log.Debug().Int("cities", a.store.Len()).Str("backend", string(kv.DetectBackend(cfg.Storage))).Msg("active cities loaded")
	return a, nil
}

func (a *app) Close() {
	if err := a.kv.Close(); err != nil {
		log.Warn().Err(err).Msg("close storage")
	}
}

// printNotice prints the user-facing notice for err and reports whether err
// was a notice.
func printNotice(cmd *cobra.Command, err error) bool {
	msg := search.Notice(err)
	if msg == "" {
		return false
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Notice(msg))
	return true
}

// prompt writes label and returns the trimmed reply, or "" on EOF.
func prompt(in io.Reader, out io.Writer, label string) string {
	fmt.Fprint(out, label)
	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}
