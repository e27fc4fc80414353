package derived_test

import (
	"testing"

	"github.com/on-the-ground/roster_ive_go/derived"
	"github.com/on-the-ground/roster_ive_go/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoize_CachesByContentKey(t *testing.T) {
	count := 0
	fn := derived.Memoize(func(r roster.Roster) int {
		count++
		return roster.CountActive(r)
	}, 16)

	seed, _ := roster.Seed()
	toggled := seed.Toggle(2)

	assert.Equal(t, 1, fn(seed))
	assert.Equal(t, 1, fn(seed)) // cached
	assert.Equal(t, 2, fn(toggled))
	assert.Equal(t, 2, count)

	// unlike a Cell, the table still remembers older inputs
	assert.Equal(t, 1, fn(seed))
	assert.Equal(t, 2, count)
}

func TestBoundedStore_RotatesGenerations(t *testing.T) {
	store := derived.NewBoundedStore[int](1)

	store.Store(1, 10)
	v, ok := store.Load(1)
	require.True(t, ok)
	assert.Equal(t, 10, v)

	// fills the live generation, rotates, key 1 retires but stays readable
	store.Store(2, 20)
	_, ok = store.Load(1)
	assert.True(t, ok)

	// second rotation throws the retired generation away
	store.Store(3, 30)
	_, ok = store.Load(1)
	assert.False(t, ok)
	_, ok = store.Load(2)
	assert.True(t, ok)
	_, ok = store.Load(3)
	assert.True(t, ok)
}

func TestBoundedStore_OverwriteDoesNotRotate(t *testing.T) {
	store := derived.NewBoundedStore[int](1)

	store.Store(1, 10)
	store.Store(2, 20) // rotates, key 1 retires
	store.Store(2, 21) // in-place overwrite of the live generation

	v, ok := store.Load(2)
	require.True(t, ok)
	assert.Equal(t, 21, v)

	// the retired generation survived the overwrite
	v, ok = store.Load(1)
	require.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestNewBoundedStore_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() {
		derived.NewBoundedStore[int](0)
	})
}

type recordingStore struct {
	entries map[uint64]int
	loads   int
	stores  int
}

func (s *recordingStore) Load(key uint64) (int, bool) {
	s.loads++
	v, ok := s.entries[key]
	return v, ok
}

func (s *recordingStore) Store(key uint64, val int) {
	s.stores++
	s.entries[key] = val
}

func TestMemoizeInto_UsesProvidedBackend(t *testing.T) {
	backend := &recordingStore{entries: map[uint64]int{}}
	fn := derived.MemoizeInto(backend, roster.CountActive)

	seed, _ := roster.Seed()

	assert.Equal(t, 1, fn(seed))
	assert.Equal(t, 1, fn(seed))
	assert.Equal(t, 2, backend.loads)
	assert.Equal(t, 1, backend.stores)
}
