package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forkful.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)

	require.NoError(t, store.Set("meal-favorites", []byte(`{"name":"meal-favorites"}`)))
	require.NoError(t, store.Set("meal-favorites", []byte(`{"name":"meal-favorites","v":2}`)))

	data, ok, err := store.Get("meal-favorites")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"name":"meal-favorites","v":2}`), data)

	require.NoError(t, store.Close())

	// Reopen: data survives the process boundary.
	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	data, ok, err = reopened.Get("meal-favorites")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(data), `"v":2`)

	require.NoError(t, reopened.Delete("meal-favorites"))
	_, ok, err = reopened.Get("meal-favorites")
	require.NoError(t, err)
	assert.False(t, ok)
}
