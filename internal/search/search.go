// Package search filters the city catalog and adds a chosen result to the
// active list.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/agent-platform/worldclock/internal/activecity"
	"github.com/agent-platform/worldclock/internal/cities"
)

var (
	ErrEmptyQuery    = errors.New("empty search query")
	ErrNoMatches     = errors.New("no matching cities")
	ErrInvalidChoice = errors.New("invalid choice")
)

// Adder is the part of the active city store used on selection.
type Adder interface {
	Add(ctx context.Context, timezone string) (cities.City, error)
}

// Flow runs a search against the catalog and applies a selection.
type Flow struct {
	catalog *cities.Catalog
	store   Adder
}

// NewFlow returns a Flow over the catalog that adds selections to store.
func NewFlow(catalog *cities.Catalog, store Adder) *Flow {
	return &Flow{catalog: catalog, store: store}
}

// Search returns the catalog cities matching term by name or timezone.
func (f *Flow) Search(term string) ([]cities.City, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyQuery
	}
	results := f.catalog.Search(term)
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatches, term)
	}
	return results, nil
}

// Select adds results[i] to the active list.
func (f *Flow) Select(ctx context.Context, results []cities.City, i int) (cities.City, error) {
	if i < 0 || i >= len(results) {
		return cities.City{}, fmt.Errorf("%w: %d (choose 1-%d)", ErrInvalidChoice, i+1, len(results))
	}
	return f.store.Add(ctx, results[i].Timezone)
}

// Notice returns the user-facing message for errors that are reported as a
// notice rather than a failure, and "" for anything else.
func Notice(err error) string {
	switch {
	case errors.Is(err, ErrEmptyQuery):
		return "Please enter a city name to search"
	case errors.Is(err, ErrNoMatches):
		return "No cities found matching your search"
	case errors.Is(err, ErrInvalidChoice):
		return "Please choose one of the listed cities"
	case errors.Is(err, activecity.ErrAlreadyPresent):
		return "This city is already in your list"
	default:
		return ""
	}
}
