package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCRUD(t *testing.T) {
	store := NewMemory()

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("a", []byte("one")))
	data, ok, err := store.Get("a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("one"), data)

	// Overwrite.
	require.NoError(t, store.Set("a", []byte("two")))
	data, _, _ = store.Get("a")
	assert.Equal(t, []byte("two"), data)

	require.NoError(t, store.Delete("a"))
	_, ok, _ = store.Get("a")
	assert.False(t, ok)

	// Deleting an absent name is not an error.
	require.NoError(t, store.Delete("a"))
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	store := NewMemory()
	require.NoError(t, store.Set("a", []byte("abc")))

	data, _, _ := store.Get("a")
	data[0] = 'x'

	fresh, _, _ := store.Get("a")
	assert.Equal(t, []byte("abc"), fresh)
}

type snapshot struct {
	Names []string `json:"names"`
}

func TestStateRoundTrip(t *testing.T) {
	store := NewMemory()

	require.NoError(t, SaveState(store, "test-store", 1, snapshot{Names: []string{"a", "b"}}))

	var out snapshot
	require.True(t, LoadState(store, "test-store", 1, &out))
	assert.Equal(t, []string{"a", "b"}, out.Names)
}

func TestLoadStateVersionMismatch(t *testing.T) {
	store := NewMemory()
	require.NoError(t, SaveState(store, "test-store", 1, snapshot{Names: []string{"a"}}))

	// Older or newer versions read back as defaults, never as errors.
	out := snapshot{Names: []string{"untouched"}}
	assert.False(t, LoadState(store, "test-store", 2, &out))
	assert.Equal(t, []string{"untouched"}, out.Names)
}

func TestLoadStateAbsentOrCorrupt(t *testing.T) {
	store := NewMemory()

	var out snapshot
	assert.False(t, LoadState(store, "missing", 1, &out))

	require.NoError(t, store.Set("bad", []byte("{not json")))
	assert.False(t, LoadState(store, "bad", 1, &out))
}

func TestNilStoreNoOps(t *testing.T) {
	var out snapshot
	assert.False(t, LoadState(nil, "anything", 1, &out))
	assert.NoError(t, SaveState(nil, "anything", 1, snapshot{}))
}
