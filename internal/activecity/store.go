// Package activecity owns the user's list of displayed cities and its persisted form.
package activecity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/agent-platform/worldclock/internal/cities"
	"github.com/agent-platform/worldclock/internal/kv"
	"github.com/rs/zerolog/log"
)

// Key is the kv entry holding the serialized list.
const Key = "activeCities"

var (
	// ErrAlreadyPresent is returned by Add when the timezone is already in the list.
	ErrAlreadyPresent = errors.New("city already in list")
	// ErrIndexOutOfRange is returned by Remove for an index outside the list.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Store is the single owner of the active city list. Every mutation is
// written through to the kv store before it returns.
type Store struct {
	kv      kv.Store
	catalog *cities.Catalog

	mu   sync.RWMutex
	list []cities.City
}

// New returns a store with an empty list. Call Load before use.
func New(store kv.Store, catalog *cities.Catalog) *Store {
	return &Store{kv: store, catalog: catalog}
}

// Load restores the list from the kv store. A missing or unreadable value is
// replaced by the default seed, which is then persisted; that is the only
// case that can return an error.
func (s *Store) Load(ctx context.Context) ([]cities.City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if list, ok := s.read(ctx); ok {
		s.list = list
		return clone(s.list), nil
	}

	s.list = s.catalog.DefaultActive()
	return clone(s.list), s.write(ctx, s.list)
}

func (s *Store) read(ctx context.Context) ([]cities.City, bool) {
	raw, err := s.kv.Get(ctx, Key)
	if errors.Is(err, kv.ErrNotFound) {
		log.Debug().Str("key", Key).Msg("no saved cities, using defaults")
		return nil, false
	}
	if err != nil {
		log.Warn().Err(err).Str("key", Key).Msg("read saved cities failed, using defaults")
		return nil, false
	}

	var list []cities.City
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		log.Debug().Err(err).Str("key", Key).Msg("saved cities unreadable, using defaults")
		return nil, false
	}

	seen := make(map[string]bool, len(list))
	out := make([]cities.City, 0, len(list))
	for _, c := range list {
		if c.Timezone == "" {
			log.Debug().Str("key", Key).Msg("saved city without timezone, using defaults")
			return nil, false
		}
		if seen[c.Timezone] {
			continue
		}
		seen[c.Timezone] = true
		out = append(out, c)
	}
	return out, true
}

func (s *Store) write(ctx context.Context, list []cities.City) error {
	if list == nil {
		list = []cities.City{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal cities: %w", err)
	}
	if err := s.kv.Set(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("save cities: %w", err)
	}
	return nil
}

// Add appends the catalog city for timezone and persists the list.
func (s *Store) Add(ctx context.Context, timezone string) (cities.City, error) {
	city, err := s.catalog.Lookup(timezone)
	if err != nil {
		return cities.City{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.list {
		if c.Timezone == timezone {
			return c, ErrAlreadyPresent
		}
	}

	next := append(clone(s.list), city)
	if err := s.write(ctx, next); err != nil {
		return cities.City{}, err
	}
	s.list = next
	log.Debug().Str("timezone", timezone).Int("count", len(next)).Msg("city added")
	return city, nil
}

// Remove deletes the city at index and persists the list.
func (s *Store) Remove(ctx context.Context, index int) (cities.City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.list) {
		return cities.City{}, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.list))
	}

	removed := s.list[index]
	next := make([]cities.City, 0, len(s.list)-1)
	next = append(next, s.list[:index]...)
	next = append(next, s.list[index+1:]...)
	if err := s.write(ctx, next); err != nil {
		return cities.City{}, err
	}
	s.list = next
	log.Debug().Str("timezone", removed.Timezone).Int("count", len(next)).Msg("city removed")
	return removed, nil
}

// Snapshot returns a copy of the current list in display order.
func (s *Store) Snapshot() []cities.City {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.list)
}

// Len returns the number of active cities.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.list)
}

func clone(list []cities.City) []cities.City {
	out := make([]cities.City, len(list))
	copy(out, list)
	return out
}
