// Package store holds the cooperating state containers behind the UI:
// detail cache, metadata, catalog, search, suggestions, favorites and
// meal plans. Stores own their state slice exclusively; every async action
// absorbs failures into a status/error pair instead of returning an error.
package store

import (
	"context"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"forkful/internal/mealdb"
	"forkful/internal/model"
)

// detailCacheSize bounds the in-session detail cache.
const detailCacheSize = 256

type detailEntry struct {
	status model.Status
	detail *model.RecipeDetail
	err    string
}

// DetailCache fetches and caches full recipe details keyed by id. It is
// the single source of truth for the detail shape; search, suggestions
// and the detail screen all resolve through it so a recipe referenced
// from several places is fetched once.
type DetailCache struct {
	mu      sync.Mutex
	api     *mealdb.Client
	entries *lru.Cache[string, *detailEntry]
}

// NewDetailCache creates an empty detail cache over the given client.
func NewDetailCache(api *mealdb.Client) *DetailCache {
	entries, _ := lru.New[string, *detailEntry](detailCacheSize)
	return &DetailCache{api: api, entries: entries}
}

// Fetch resolves a recipe detail by id.
//
// Without force, a key already loading returns nil immediately (the
// loading status acts as a per-key single-flight flag) and a cached
// success returns without a network call. Any failure is captured into
// the entry's status and error message; Fetch never returns an error.
func (c *DetailCache) Fetch(ctx context.Context, id string, force bool) *model.RecipeDetail {
	key := strings.TrimSpace(id)
	if key == "" {
		return nil
	}

	c.mu.Lock()
	entry, ok := c.entries.Get(key)
	if !force && ok {
		switch entry.status {
		case model.StatusLoading:
			c.mu.Unlock()
			return nil
		case model.StatusSuccess:
			detail := entry.detail
			c.mu.Unlock()
			return detail
		}
	}
	c.entries.Add(key, &detailEntry{status: model.StatusLoading})
	c.mu.Unlock()

	detail, err := c.api.Lookup(ctx, key)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.entries.Add(key, &detailEntry{status: model.StatusError, err: errorMessage(err)})
		return nil
	}
	c.entries.Add(key, &detailEntry{status: model.StatusSuccess, detail: detail})
	return detail
}

// Detail returns the cached detail for an id, if any.
func (c *DetailCache) Detail(id string) *model.RecipeDetail {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries.Get(id); ok {
		return entry.detail
	}
	return nil
}

// Status returns the fetch status for an id; unknown ids are idle.
func (c *DetailCache) Status(id string) model.Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries.Get(id); ok {
		return entry.status
	}
	return model.StatusIdle
}

// Error returns the stored error message for an id, if any.
func (c *DetailCache) Error(id string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries.Get(id); ok {
		return entry.err
	}
	return ""
}

// errorMessage extracts the user-facing message from a client error.
// Sentinel errors like mealdb.ErrNotFound already carry display wording.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
