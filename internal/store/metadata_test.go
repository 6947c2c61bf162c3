package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forkful/internal/model"
)

func TestMetadataInit(t *testing.T) {
	api := newFakeAPI(t)
	api.categories = []string{"Beef", "Chicken", "Dessert"}
	api.areas = []string{"British", "Japanese"}
	for i := 0; i < 60; i++ {
		api.ingredients = append(api.ingredients, fmt.Sprintf("Ingredient %d", i))
	}

	meta := NewMetadata(api.client())
	meta.Init(context.Background())

	require.Equal(t, model.StatusSuccess, meta.Status())
	assert.Equal(t, []string{"Beef", "Chicken", "Dessert"}, meta.Categories())
	assert.Equal(t, []string{"British", "Japanese"}, meta.Areas())
	assert.Len(t, meta.Ingredients(), 50, "ingredient list is truncated")
	assert.Empty(t, meta.Error())
}

func TestMetadataInitIdempotent(t *testing.T) {
	api := newFakeAPI(t)
	api.categories = []string{"Beef"}
	api.areas = []string{"British"}
	api.ingredients = []string{"Salt"}

	meta := NewMetadata(api.client())
	ctx := context.Background()
	meta.Init(ctx)
	meta.Init(ctx)
	meta.Init(ctx)

	assert.Equal(t, 1, api.count("list.c"))
	assert.Equal(t, 1, api.count("list.a"))
	assert.Equal(t, 1, api.count("list.i"))
}

func TestMetadataAllOrNothing(t *testing.T) {
	api := newFakeAPI(t)
	api.categories = []string{"Beef"}
	api.areas = []string{"British"}
	api.ingredients = []string{"Salt"}
	api.fail("list.a", 500)

	meta := NewMetadata(api.client())
	meta.Init(context.Background())

	// One failed fetch leaves every list at its pre-call value.
	assert.Equal(t, model.StatusError, meta.Status())
	assert.Equal(t, "Failed to load meal areas (status 500).", meta.Error())
	assert.Empty(t, meta.Categories())
	assert.Empty(t, meta.Areas())
	assert.Empty(t, meta.Ingredients())
}

func TestMetadataRetryAfterError(t *testing.T) {
	api := newFakeAPI(t)
	api.categories = []string{"Beef"}
	api.areas = []string{"British"}
	api.ingredients = []string{"Salt"}
	api.fail("list.i", 503)

	meta := NewMetadata(api.client())
	ctx := context.Background()
	meta.Init(ctx)
	require.Equal(t, model.StatusError, meta.Status())

	api.heal("list.i")
	meta.Init(ctx)
	assert.Equal(t, model.StatusSuccess, meta.Status())
	assert.Equal(t, []string{"Beef"}, meta.Categories())
}
