package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forkful/internal/model"
	"forkful/internal/storage"
)

func sampleMeal(id, name string) model.RecipeSummary {
	return model.RecipeSummary{
		ID:       id,
		Name:     name,
		Image:    "https://img.example/" + id + ".jpg",
		Category: "Beef",
		Area:     "British",
	}
}

func TestFavoritesToggleIdempotentPair(t *testing.T) {
	favorites := NewFavorites(storage.NewMemory())
	meal := sampleMeal("1", "Stew")

	favorites.Toggle(meal)
	assert.True(t, favorites.IsFavorite("1"))

	favorites.Toggle(meal)
	assert.False(t, favorites.IsFavorite("1"), "a toggle pair restores membership")
	assert.Zero(t, favorites.Len())

	// And again from the non-member side.
	favorites.Toggle(meal)
	favorites.Toggle(meal)
	favorites.Toggle(meal)
	assert.True(t, favorites.IsFavorite("1"))
}

func TestFavoritesToggleWithoutID(t *testing.T) {
	favorites := NewFavorites(storage.NewMemory())
	favorites.Toggle(model.RecipeSummary{Name: "Nameless"})
	assert.Zero(t, favorites.Len())
}

func TestFavoritesRemoveAndClear(t *testing.T) {
	favorites := NewFavorites(storage.NewMemory())
	favorites.Toggle(sampleMeal("1", "Stew"))
	favorites.Toggle(sampleMeal("2", "Pie"))

	favorites.Remove("1")
	assert.False(t, favorites.IsFavorite("1"))
	assert.True(t, favorites.IsFavorite("2"))

	favorites.Clear()
	assert.Zero(t, favorites.Len())
}

func TestFavoritesListSortedByName(t *testing.T) {
	favorites := NewFavorites(storage.NewMemory())
	favorites.Toggle(sampleMeal("1", "Stew"))
	favorites.Toggle(sampleMeal("2", "Apple Pie"))
	favorites.Toggle(sampleMeal("3", "Curry"))

	list := favorites.List()
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Apple Pie", "Curry", "Stew"},
		[]string{list[0].Name, list[1].Name, list[2].Name})
}

func TestFavoritesRoundTripPersistence(t *testing.T) {
	persist := storage.NewMemory()

	first := NewFavorites(persist)
	first.Toggle(sampleMeal("1", "Stew"))
	first.Toggle(sampleMeal("2", "Pie"))

	second := NewFavorites(persist)
	assert.Equal(t, first.List(), second.List(), "a fresh store reproduces the id mapping")
	assert.True(t, second.IsFavorite("1"))
	assert.True(t, second.IsFavorite("2"))
}
