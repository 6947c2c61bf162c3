package store

import (
	"context"
	"slices"
	"sync"

	"forkful/internal/mealdb"
	"forkful/internal/model"
	"forkful/internal/storage"
)

const (
	catalogStoreName    = "meal-catalog"
	catalogStoreVersion = 1

	// DefaultPageLimit is the catalog page size when nothing is persisted.
	DefaultPageLimit = 3
)

// catalogSnapshot is the persisted slice of catalog state.
type catalogSnapshot struct {
	SelectedCategory string                           `json:"selectedCategory"`
	Page             int                              `json:"page"`
	Limit            int                              `json:"limit"`
	MealsByCategory  map[string][]model.RecipeSummary `json:"mealsByCategory"`
}

// Catalog caches recipe summaries per category and derives a paginated
// view over the selected one. The selection, page, limit and the summary
// cache survive restarts; a category's cache is never invalidated once
// populated (staleness is an accepted tradeoff for a read-only API).
type Catalog struct {
	mu      sync.Mutex
	api     *mealdb.Client
	persist storage.Store

	categories       []string
	selectedCategory string
	mealsByCategory  map[string][]model.RecipeSummary
	page             int
	limit            int
	loading          bool
	err              string
}

// CatalogView is the derived, paginated read model.
type CatalogView struct {
	Categories       []string
	SelectedCategory string
	Meals            []model.RecipeSummary
	Total            int
	TotalPages       int
	Page             int
	Limit            int
	HasNext          bool
	HasPrev          bool
	Loading          bool
	Error            string
}

// NewCatalog creates a catalog store, restoring any persisted snapshot.
func NewCatalog(api *mealdb.Client, persist storage.Store) *Catalog {
	c := &Catalog{
		api:             api,
		persist:         persist,
		mealsByCategory: make(map[string][]model.RecipeSummary),
		page:            1,
		limit:           DefaultPageLimit,
	}

	var snap catalogSnapshot
	if storage.LoadState(persist, catalogStoreName, catalogStoreVersion, &snap) {
		c.selectedCategory = snap.SelectedCategory
		if snap.Page >= 1 {
			c.page = snap.Page
		}
		if snap.Limit >= 1 {
			c.limit = snap.Limit
		}
		if snap.MealsByCategory != nil {
			c.mealsByCategory = snap.MealsByCategory
		}
	}
	return c
}

// Init loads the category list once and resolves the selected category: a
// persisted selection still present in the fresh list wins, otherwise the
// first category. The resolved category's meals are fetched unless already
// cached. Re-entrant calls while loading are no-ops.
func (c *Catalog) Init(ctx context.Context) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return
	}
	c.loading = true
	c.err = ""
	c.mu.Unlock()

	categories, err := c.api.Categories(ctx)

	c.mu.Lock()
	if err != nil {
		c.loading = false
		c.err = errorMessage(err)
		c.mu.Unlock()
		return
	}

	stored := c.selectedCategory
	next := ""
	if len(categories) > 0 {
		next = categories[0]
	}
	if stored != "" && slices.Contains(categories, stored) {
		next = stored
	} else {
		c.page = 1
	}

	c.categories = categories
	c.selectedCategory = next
	_, cached := c.mealsByCategory[next]
	needFetch := next != "" && !cached
	if !needFetch {
		c.loading = false
		c.clampPageLocked()
		c.persistLocked()
		c.mu.Unlock()
		return
	}
	c.persistLocked()
	c.mu.Unlock()

	c.fetchCategory(ctx, next)
}

// SetCategory switches the selected category, resetting the page. It is a
// no-op when unchanged; meals are fetched only when not already cached.
func (c *Catalog) SetCategory(ctx context.Context, category string) {
	c.mu.Lock()
	if category == c.selectedCategory {
		c.mu.Unlock()
		return
	}

	c.selectedCategory = category
	c.page = 1
	c.err = ""
	_, cached := c.mealsByCategory[category]
	c.persistLocked()
	c.mu.Unlock()

	if category == "" || cached {
		return
	}
	c.fetchCategory(ctx, category)
}

// fetchCategory loads and caches one category's summaries.
func (c *Catalog) fetchCategory(ctx context.Context, category string) {
	c.mu.Lock()
	c.loading = true
	c.err = ""
	c.mu.Unlock()

	meals, err := c.api.FilterByCategory(ctx, category)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.err = errorMessage(err)
		return
	}
	c.mealsByCategory[category] = meals
	c.clampPageLocked()
	c.persistLocked()
}

// SetPage moves to a page, clamped to [1, totalPages].
func (c *Catalog) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if page < 1 {
		page = 1
	}
	c.page = page
	c.clampPageLocked()
	c.persistLocked()
}

// SetLimit changes the page size (coerced to at least 1) and resets to
// the first page.
func (c *Catalog) SetLimit(limit int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if limit < 1 {
		limit = 1
	}
	c.limit = limit
	c.page = 1
	c.persistLocked()
}

// View derives the paginated read model for the selected category.
func (c *Catalog) View() CatalogView {
	c.mu.Lock()
	defer c.mu.Unlock()

	meals := c.mealsByCategory[c.selectedCategory]
	total := len(meals)
	totalPages := totalPages(total, c.limit)
	page := min(c.page, totalPages)

	start := (page - 1) * c.limit
	end := min(start+c.limit, total)
	var window []model.RecipeSummary
	if start < end {
		window = append([]model.RecipeSummary(nil), meals[start:end]...)
	}

	return CatalogView{
		Categories:       append([]string(nil), c.categories...),
		SelectedCategory: c.selectedCategory,
		Meals:            window,
		Total:            total,
		TotalPages:       totalPages,
		Page:             page,
		Limit:            c.limit,
		HasNext:          page < totalPages,
		HasPrev:          page > 1,
		Loading:          c.loading,
		Error:            c.err,
	}
}

// NextPage advances one page when possible.
func (c *Catalog) NextPage() {
	c.SetPage(c.View().Page + 1)
}

// PrevPage goes back one page when possible.
func (c *Catalog) PrevPage() {
	c.SetPage(c.View().Page - 1)
}

// clampPageLocked re-clamps the page against the current total and limit.
func (c *Catalog) clampPageLocked() {
	pages := totalPages(len(c.mealsByCategory[c.selectedCategory]), c.limit)
	if c.page > pages {
		c.page = pages
	}
	if c.page < 1 {
		c.page = 1
	}
}

func (c *Catalog) persistLocked() {
	_ = storage.SaveState(c.persist, catalogStoreName, catalogStoreVersion, catalogSnapshot{
		SelectedCategory: c.selectedCategory,
		Page:             c.page,
		Limit:            c.limit,
		MealsByCategory:  c.mealsByCategory,
	})
}

// totalPages computes max(1, ceil(total/limit)).
func totalPages(total, limit int) int {
	if limit < 1 {
		return 1
	}
	pages := (total + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}
