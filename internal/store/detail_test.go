package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forkful/internal/model"
)

func TestDetailCacheFetchAndCacheHit(t *testing.T) {
	api := newFakeAPI(t)
	api.records["52772"] = fullRecord("52772", "Teriyaki Chicken", "Chicken", "Japanese")

	cache := NewDetailCache(api.client())
	ctx := context.Background()

	detail := cache.Fetch(ctx, "52772", false)
	require.NotNil(t, detail)
	assert.Equal(t, "Teriyaki Chicken", detail.Name)
	assert.Equal(t, model.StatusSuccess, cache.Status("52772"))

	// Second non-forced fetch is a cache hit.
	again := cache.Fetch(ctx, "52772", false)
	require.NotNil(t, again)
	assert.Equal(t, detail, again)
	assert.Equal(t, 1, api.count("lookup:52772"))
}

func TestDetailCacheForceRefetches(t *testing.T) {
	api := newFakeAPI(t)
	api.records["1"] = fullRecord("1", "One", "Beef", "British")

	cache := NewDetailCache(api.client())
	ctx := context.Background()

	require.NotNil(t, cache.Fetch(ctx, "1", false))
	require.NotNil(t, cache.Fetch(ctx, "1", true))
	assert.Equal(t, 2, api.count("lookup:1"))
}

func TestDetailCacheSingleFlight(t *testing.T) {
	api := newFakeAPI(t)
	api.records["9"] = fullRecord("9", "Nine", "Beef", "British")
	api.lookupDelay = 150 * time.Millisecond

	cache := NewDetailCache(api.client())
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		cache.Fetch(ctx, "9", false)
	}()

	// Wait for the first fetch to mark the entry loading.
	require.Eventually(t, func() bool {
		return cache.Status("9") == model.StatusLoading
	}, time.Second, 5*time.Millisecond)

	// A duplicate initiator finds the loading flag and abstains.
	assert.Nil(t, cache.Fetch(ctx, "9", false))

	wg.Wait()
	assert.Equal(t, 1, api.count("lookup:9"))
	assert.Equal(t, model.StatusSuccess, cache.Status("9"))
}

func TestDetailCacheEmptyID(t *testing.T) {
	api := newFakeAPI(t)
	cache := NewDetailCache(api.client())

	assert.Nil(t, cache.Fetch(context.Background(), "", false))
	assert.Nil(t, cache.Fetch(context.Background(), "   ", false))
	assert.Equal(t, 0, api.totalRequests())
}

func TestDetailCacheNotFound(t *testing.T) {
	api := newFakeAPI(t)
	cache := NewDetailCache(api.client())

	assert.Nil(t, cache.Fetch(context.Background(), "404", false))
	assert.Equal(t, model.StatusError, cache.Status("404"))
	assert.Equal(t, "Recipe detail not found.", cache.Error("404"))
}

func TestDetailCacheServerError(t *testing.T) {
	api := newFakeAPI(t)
	api.records["5"] = fullRecord("5", "Five", "Beef", "British")
	api.fail("lookup:5", 500)

	cache := NewDetailCache(api.client())
	ctx := context.Background()

	assert.Nil(t, cache.Fetch(ctx, "5", false))
	assert.Equal(t, model.StatusError, cache.Status("5"))
	assert.Equal(t, "Failed to load recipe detail (status 500).", cache.Error("5"))

	// An errored entry retries on the next non-forced fetch.
	api.heal("lookup:5")
	require.NotNil(t, cache.Fetch(ctx, "5", false))
	assert.Equal(t, model.StatusSuccess, cache.Status("5"))
	assert.Empty(t, cache.Error("5"))
}
