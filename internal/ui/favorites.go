package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"forkful/internal/model"
)

// FavoritesModel is the favorites screen: the persisted set rendered as
// a sorted list.
type FavoritesModel struct {
	stores Stores
	keys   KeyMap
	cursor int
}

// NewFavoritesModel creates the favorites screen.
func NewFavoritesModel(stores Stores, keys KeyMap) FavoritesModel {
	return FavoritesModel{stores: stores, keys: keys}
}

func (m FavoritesModel) selected(list []model.RecipeSummary) (model.RecipeSummary, bool) {
	if m.cursor < 0 || m.cursor >= len(list) {
		return model.RecipeSummary{}, false
	}
	return list[m.cursor], true
}

// Update handles favorites keys. A non-empty open id asks the root to
// show the detail screen.
func (m FavoritesModel) Update(msg tea.KeyMsg) (FavoritesModel, tea.Cmd, string) {
	favorites := m.stores.Favorites
	list := favorites.List()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(list)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Delete), key.Matches(msg, m.keys.Favorite):
		if meal, ok := m.selected(list); ok {
			favorites.Remove(meal.ID)
			if m.cursor >= favorites.Len() {
				m.cursor = favorites.Len() - 1
			}
		}

	case key.Matches(msg, m.keys.Clear):
		favorites.Clear()
		m.cursor = 0

	case key.Matches(msg, m.keys.Queue):
		if meal, ok := m.selected(list); ok {
			m.stores.Plans.AddSuggested(meal)
		}

	case key.Matches(msg, m.keys.Select):
		if meal, ok := m.selected(list); ok {
			return m, nil, meal.ID
		}
	}

	return m, nil, ""
}

// View renders the favorites screen.
func (m FavoritesModel) View(width int) string {
	list := m.stores.Favorites.List()
	if len(list) == 0 {
		return EmptyStateStyle.Render("No favorites yet. Press f on any recipe to add one.")
	}

	var b strings.Builder
	b.WriteString(LabelStyle.Render(fmt.Sprintf("Favorites (%d)", len(list))) + "\n")
	for i, meal := range list {
		line := "♥ " + meal.Name
		if meal.Category != "" {
			line += MutedStyle.Render("  " + meal.Category)
		}
		if i == m.cursor {
			b.WriteString(SelectedRowStyle.Render(line) + "\n")
		} else {
			b.WriteString(NormalRowStyle.Render(line) + "\n")
		}
	}
	b.WriteString(MutedStyle.Render("\nenter: open · x: remove · X: clear · s: shortlist"))
	return b.String()
}
