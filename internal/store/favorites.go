package store

import (
	"sort"
	"sync"

	"forkful/internal/model"
	"forkful/internal/storage"
)

const (
	favoritesStoreName    = "meal-favorites"
	favoritesStoreVersion = 1
)

type favoritesSnapshot struct {
	Favorites map[string]model.RecipeSummary `json:"favorites"`
}

// Favorites is the persisted set of favorited recipes keyed by id.
// Toggling is idempotent in pairs: toggling a meal twice restores the
// original membership. Every mutation persists immediately.
type Favorites struct {
	mu        sync.Mutex
	persist   storage.Store
	favorites map[string]model.RecipeSummary
}

// NewFavorites creates a favorites store, restoring any persisted snapshot.
func NewFavorites(persist storage.Store) *Favorites {
	f := &Favorites{
		persist:   persist,
		favorites: make(map[string]model.RecipeSummary),
	}

	var snap favoritesSnapshot
	if storage.LoadState(persist, favoritesStoreName, favoritesStoreVersion, &snap) && snap.Favorites != nil {
		f.favorites = snap.Favorites
	}
	return f
}

// Toggle flips membership for a meal: present is removed, absent is
// inserted as a normalized summary projection. A meal without an id is
// ignored.
func (f *Favorites) Toggle(meal model.RecipeSummary) {
	if meal.ID == "" {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.favorites[meal.ID]; ok {
		delete(f.favorites, meal.ID)
	} else {
		f.favorites[meal.ID] = meal
	}
	f.persistLocked()
}

// Remove deletes a favorite by id.
func (f *Favorites) Remove(id string) {
	if id == "" {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.favorites, id)
	f.persistLocked()
}

// Clear empties the set.
func (f *Favorites) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.favorites = make(map[string]model.RecipeSummary)
	f.persistLocked()
}

// IsFavorite reports membership for an id.
func (f *Favorites) IsFavorite(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.favorites[id]
	return ok
}

// List returns the favorites sorted by name for a stable display order.
func (f *Favorites) List() []model.RecipeSummary {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]model.RecipeSummary, 0, len(f.favorites))
	for _, meal := range f.favorites {
		out = append(out, meal)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of favorites.
func (f *Favorites) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.favorites)
}

func (f *Favorites) persistLocked() {
	_ = storage.SaveState(f.persist, favoritesStoreName, favoritesStoreVersion, favoritesSnapshot{
		Favorites: f.favorites,
	})
}
