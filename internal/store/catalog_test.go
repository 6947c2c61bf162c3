package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forkful/internal/storage"
)

func seedCatalogAPI(t *testing.T) *fakeAPI {
	api := newFakeAPI(t)
	api.categories = []string{"Beef", "Chicken", "Dessert"}
	for i := 1; i <= 7; i++ {
		api.byCategory["Beef"] = append(api.byCategory["Beef"],
			summaryRecord(fmt.Sprintf("b%d", i), fmt.Sprintf("Beef %d", i)))
	}
	api.byCategory["Chicken"] = []map[string]any{
		summaryRecord("c1", "Chicken 1"),
		summaryRecord("c2", "Chicken 2"),
	}
	return api
}

func TestCatalogInitSelectsFirstCategory(t *testing.T) {
	api := seedCatalogAPI(t)
	catalog := NewCatalog(api.client(), storage.NewMemory())
	catalog.Init(context.Background())

	view := catalog.View()
	require.Equal(t, "Beef", view.SelectedCategory)
	assert.Equal(t, []string{"Beef", "Chicken", "Dessert"}, view.Categories)
	assert.Equal(t, 7, view.Total)
	assert.Equal(t, 1, view.Page)
	assert.Len(t, view.Meals, DefaultPageLimit)
	assert.Equal(t, "b1", view.Meals[0].ID)
}

func TestCatalogInitRestoresPersistedSelection(t *testing.T) {
	api := seedCatalogAPI(t)
	persist := storage.NewMemory()

	first := NewCatalog(api.client(), persist)
	first.Init(context.Background())
	first.SetCategory(context.Background(), "Chicken")

	// A fresh store over the same persistence keeps the selection and
	// serves the cached summaries without refetching.
	requests := api.count("filter.c:Chicken")
	second := NewCatalog(api.client(), persist)
	second.Init(context.Background())

	view := second.View()
	assert.Equal(t, "Chicken", view.SelectedCategory)
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, requests, api.count("filter.c:Chicken"))
}

func TestCatalogInitDropsStalePersistedSelection(t *testing.T) {
	api := seedCatalogAPI(t)
	persist := storage.NewMemory()
	require.NoError(t, storage.SaveState(persist, "meal-catalog", 1, catalogSnapshot{
		SelectedCategory: "Vegan", // no longer offered
		Page:             4,
		Limit:            2,
	}))

	catalog := NewCatalog(api.client(), persist)
	catalog.Init(context.Background())

	view := catalog.View()
	assert.Equal(t, "Beef", view.SelectedCategory)
	assert.Equal(t, 1, view.Page, "invalid persisted category resets the page")
	assert.Equal(t, 2, view.Limit, "limit survives")
}

func TestCatalogSetCategory(t *testing.T) {
	api := seedCatalogAPI(t)
	catalog := NewCatalog(api.client(), storage.NewMemory())
	ctx := context.Background()
	catalog.Init(ctx)
	catalog.SetPage(3)

	// Unchanged category is a no-op.
	beef := api.count("filter.c:Beef")
	catalog.SetCategory(ctx, "Beef")
	assert.Equal(t, beef, api.count("filter.c:Beef"))
	assert.Equal(t, 3, catalog.View().Page)

	// Switching resets the page and fetches once.
	catalog.SetCategory(ctx, "Chicken")
	view := catalog.View()
	assert.Equal(t, "Chicken", view.SelectedCategory)
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 1, api.count("filter.c:Chicken"))

	// Switching back hits the cache.
	catalog.SetCategory(ctx, "Beef")
	assert.Equal(t, beef, api.count("filter.c:Beef"))
}

func TestCatalogPaginationClamp(t *testing.T) {
	api := seedCatalogAPI(t)
	catalog := NewCatalog(api.client(), storage.NewMemory())
	ctx := context.Background()
	catalog.Init(ctx)

	// 7 meals, limit 3 -> 3 pages.
	view := catalog.View()
	require.Equal(t, 3, view.TotalPages)

	catalog.SetPage(99)
	assert.Equal(t, 3, catalog.View().Page)
	catalog.SetPage(-5)
	assert.Equal(t, 1, catalog.View().Page)

	catalog.SetPage(3)
	assert.Len(t, catalog.View().Meals, 1, "last page holds the remainder")
	assert.False(t, catalog.View().HasNext)
	assert.True(t, catalog.View().HasPrev)

	// Changing the limit resets to page 1 and re-derives the page count.
	catalog.SetLimit(10)
	view = catalog.View()
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 1, view.TotalPages)
	assert.Len(t, view.Meals, 7)

	catalog.SetLimit(0)
	assert.Equal(t, 1, catalog.View().Limit, "limit is coerced to at least 1")
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, limit, want int
	}{
		{0, 1, 1},
		{0, 5, 1},
		{1, 1, 1},
		{5, 5, 1},
		{6, 5, 2},
		{7, 3, 3},
		{10, 0, 1},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, totalPages(tc.total, tc.limit),
			"totalPages(%d, %d)", tc.total, tc.limit)
	}
}
