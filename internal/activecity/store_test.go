package activecity

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/agent-platform/worldclock/internal/cities"
	"github.com/agent-platform/worldclock/internal/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDisk = errors.New("disk full")

// flakyKV wraps a memory store and fails writes while failSet is true.
type flakyKV struct {
	*kv.Memory
	failSet bool
	failGet bool
}

func (f *flakyKV) Get(ctx context.Context, key string) (string, error) {
	if f.failGet {
		return "", errDisk
	}
	return f.Memory.Get(ctx, key)
}

func (f *flakyKV) Set(ctx context.Context, key, value string) error {
	if f.failSet {
		return errDisk
	}
	return f.Memory.Set(ctx, key, value)
}

func names(list []cities.City) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.Name
	}
	return out
}

func saved(t *testing.T, m *kv.Memory) []cities.City {
	t.Helper()
	raw, err := m.Get(context.Background(), Key)
	require.NoError(t, err)
	var list []cities.City
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	return list
}

func newLoaded(t *testing.T) (*Store, *kv.Memory) {
	t.Helper()
	mem := kv.NewMemory()
	s := New(mem, cities.NewCatalog())
	_, err := s.Load(context.Background())
	require.NoError(t, err)
	return s, mem
}

func TestLoadDefaultsAndPersists(t *testing.T) {
	mem := kv.NewMemory()
	s := New(mem, cities.NewCatalog())

	got, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"New York", "London", "Tokyo"}, names(got))
	assert.Equal(t, got, saved(t, mem))
	assert.Equal(t, 1, mem.Writes)
}

func TestLoadRestoresSavedOrder(t *testing.T) {
	mem := kv.NewMemory()
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, Key, `[{"name":"Paris","timezone":"Europe/Paris"},{"name":"Seoul","timezone":"Asia/Seoul"}]`))

	s := New(mem, cities.NewCatalog())
	got, err := s.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"Paris", "Seoul"}, names(got))
	assert.Equal(t, 1, mem.Writes, "loading saved data must not write")
}

func TestLoadKeepsEmptyList(t *testing.T) {
	mem := kv.NewMemory()
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, Key, `[]`))

	s := New(mem, cities.NewCatalog())
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadCorruptFallsBackSilently(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{{{`},
		{"json null", `null`},
		{"wrong shape", `{"name":"Paris"}`},
		{"missing timezone", `[{"name":"Paris"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := kv.NewMemory()
			ctx := context.Background()
			require.NoError(t, mem.Set(ctx, Key, tt.raw))

			s := New(mem, cities.NewCatalog())
			got, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"New York", "London", "Tokyo"}, names(got))
			assert.Equal(t, got, saved(t, mem), "seed should overwrite the corrupt value")
		})
	}
}

func TestLoadCollapsesDuplicates(t *testing.T) {
	mem := kv.NewMemory()
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, Key, `[
		{"name":"Tokyo","timezone":"Asia/Tokyo"},
		{"name":"London","timezone":"Europe/London"},
		{"name":"Tokyo again","timezone":"Asia/Tokyo"}
	]`))

	s := New(mem, cities.NewCatalog())
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tokyo", "London"}, names(got))
}

func TestLoadReadErrorFallsBack(t *testing.T) {
	f := &flakyKV{Memory: kv.NewMemory(), failGet: true}
	s := New(f, cities.NewCatalog())

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"New York", "London", "Tokyo"}, names(got))
}

func TestLoadSeedWriteFailure(t *testing.T) {
	f := &flakyKV{Memory: kv.NewMemory(), failSet: true}
	s := New(f, cities.NewCatalog())

	got, err := s.Load(context.Background())
	assert.ErrorIs(t, err, errDisk)
	assert.Equal(t, []string{"New York", "London", "Tokyo"}, names(got))
}

func TestAddAppendsAndPersists(t *testing.T) {
	s, mem := newLoaded(t)

	city, err := s.Add(context.Background(), "Europe/Paris")
	require.NoError(t, err)
	assert.Equal(t, "Paris", city.Name)

	want := []string{"New York", "London", "Tokyo", "Paris"}
	assert.Equal(t, want, names(s.Snapshot()))
	assert.Equal(t, want, names(saved(t, mem)))
	assert.Equal(t, 2, mem.Writes)
}

func TestAddIsIdempotent(t *testing.T) {
	s, mem := newLoaded(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "Asia/Seoul")
	require.NoError(t, err)
	before := s.Snapshot()
	writes := mem.Writes

	_, err = s.Add(ctx, "Asia/Seoul")
	assert.ErrorIs(t, err, ErrAlreadyPresent)
	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, writes, mem.Writes, "duplicate add must not write")
}

func TestAddTokyoAlreadyPresent(t *testing.T) {
	s, _ := newLoaded(t)

	_, err := s.Add(context.Background(), "Asia/Tokyo")
	assert.ErrorIs(t, err, ErrAlreadyPresent)
	assert.Equal(t, []string{"New York", "London", "Tokyo"}, names(s.Snapshot()))
}

func TestAddUnknownTimezone(t *testing.T) {
	s, _ := newLoaded(t)

	_, err := s.Add(context.Background(), "Atlantis/Capital")
	assert.ErrorIs(t, err, cities.ErrNotFound)
	assert.Equal(t, 3, s.Len())
}

func TestAddWriteFailureRollsBack(t *testing.T) {
	f := &flakyKV{Memory: kv.NewMemory()}
	s := New(f, cities.NewCatalog())
	ctx := context.Background()
	_, err := s.Load(ctx)
	require.NoError(t, err)

	f.failSet = true
	_, err = s.Add(ctx, "Europe/Paris")
	assert.ErrorIs(t, err, errDisk)
	assert.Equal(t, []string{"New York", "London", "Tokyo"}, names(s.Snapshot()))
}

func TestRemoveEveryIndex(t *testing.T) {
	for i := 0; i < 3; i++ {
		s, mem := newLoaded(t)
		before := s.Snapshot()

		removed, err := s.Remove(context.Background(), i)
		require.NoError(t, err)
		assert.Equal(t, before[i], removed)

		after := s.Snapshot()
		assert.Len(t, after, len(before)-1)
		assert.NotContains(t, after, before[i])
		assert.Equal(t, after, saved(t, mem))
	}
}

func TestRemoveFirstShiftsList(t *testing.T) {
	s, _ := newLoaded(t)

	_, err := s.Remove(context.Background(), 0)
	require.NoError(t, err)

	got := s.Snapshot()
	require.Len(t, got, 2)
	assert.Equal(t, "London", got[0].Name)
	assert.Equal(t, "Tokyo", got[1].Name)
}

func TestRemoveOutOfRange(t *testing.T) {
	s, mem := newLoaded(t)
	writes := mem.Writes

	for _, i := range []int{-1, 3, 100} {
		_, err := s.Remove(context.Background(), i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", i)
	}
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, writes, mem.Writes)
}

func TestRemoveWriteFailureRollsBack(t *testing.T) {
	f := &flakyKV{Memory: kv.NewMemory()}
	s := New(f, cities.NewCatalog())
	ctx := context.Background()
	_, err := s.Load(ctx)
	require.NoError(t, err)

	f.failSet = true
	_, err = s.Remove(ctx, 1)
	assert.ErrorIs(t, err, errDisk)
	assert.Equal(t, 3, s.Len())
}

func TestRemoveLastThenReload(t *testing.T) {
	s, mem := newLoaded(t)
	ctx := context.Background()
	for s.Len() > 0 {
		_, err := s.Remove(ctx, 0)
		require.NoError(t, err)
	}

	reloaded := New(mem, cities.NewCatalog())
	got, err := reloaded.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "an emptied list stays empty across restarts")
}

func TestSnapshotIsCopy(t *testing.T) {
	s, _ := newLoaded(t)
	snap := s.Snapshot()
	snap[0].Name = "Gotham"
	assert.Equal(t, "New York", s.Snapshot()[0].Name)
}

func TestSQLiteBackedStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worldclock.db")
	ctx := context.Background()

	db, err := kv.OpenSQL(path)
	require.NoError(t, err)
	s := New(db, cities.NewCatalog())
	_, err = s.Load(ctx)
	require.NoError(t, err)
	_, err = s.Add(ctx, "Africa/Cairo")
	require.NoError(t, err)
	_, err = s.Remove(ctx, 0)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = kv.OpenSQL(path)
	require.NoError(t, err)
	defer db.Close()
	got, err := New(db, cities.NewCatalog()).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"London", "Tokyo", "Cairo"}, names(got))
}
