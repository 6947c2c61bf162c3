package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"forkful/internal/model"
)

// BrowseModel is the catalog screen: a category selector over a paginated
// recipe table.
type BrowseModel struct {
	stores Stores
	keys   KeyMap
	cursor int
}

// NewBrowseModel creates the browse screen.
func NewBrowseModel(stores Stores, keys KeyMap) BrowseModel {
	return BrowseModel{stores: stores, keys: keys}
}

// Clamp keeps the cursor inside the current page after the catalog
// changed underneath the view.
func (m *BrowseModel) Clamp() {
	view := m.stores.Catalog.View()
	if m.cursor >= len(view.Meals) {
		m.cursor = len(view.Meals) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the meal under the cursor.
func (m BrowseModel) Selected() (model.RecipeSummary, bool) {
	view := m.stores.Catalog.View()
	if m.cursor < 0 || m.cursor >= len(view.Meals) {
		return model.RecipeSummary{}, false
	}
	return view.Meals[m.cursor], true
}

// Update handles browse keys. A non-empty open id asks the root to show
// the detail screen.
func (m BrowseModel) Update(msg tea.KeyMsg) (BrowseModel, tea.Cmd, string) {
	catalog := m.stores.Catalog
	view := catalog.View()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(view.Meals)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.PrevPage):
		catalog.PrevPage()
		m.cursor = 0

	case key.Matches(msg, m.keys.NextPage):
		catalog.NextPage()
		m.cursor = 0

	case key.Matches(msg, m.keys.NextCategory), key.Matches(msg, m.keys.PrevCategory):
		next := neighborCategory(view.Categories, view.SelectedCategory,
			key.Matches(msg, m.keys.NextCategory))
		if next != "" && next != view.SelectedCategory {
			m.cursor = 0
			return m, setCategoryCmd(catalog, next), ""
		}

	case key.Matches(msg, m.keys.MorePerPage):
		catalog.SetLimit(view.Limit + 1)
		m.cursor = 0

	case key.Matches(msg, m.keys.LessPerPage):
		catalog.SetLimit(view.Limit - 1)
		m.cursor = 0

	case key.Matches(msg, m.keys.Favorite):
		if meal, ok := m.Selected(); ok {
			m.stores.Favorites.Toggle(meal)
		}

	case key.Matches(msg, m.keys.Queue):
		if meal, ok := m.Selected(); ok {
			m.stores.Plans.AddSuggested(meal)
		}

	case key.Matches(msg, m.keys.Select):
		if meal, ok := m.Selected(); ok {
			return m, nil, meal.ID
		}
	}

	return m, nil, ""
}

// View renders the browse screen.
func (m BrowseModel) View(width int) string {
	view := m.stores.Catalog.View()
	var b strings.Builder

	category := view.SelectedCategory
	if category == "" {
		category = "(none)"
	}
	b.WriteString(LabelStyle.Render("Category: ") + NormalRowStyle.Render(category))
	b.WriteString(MutedStyle.Render("  c/C to change\n"))

	if view.Error != "" {
		b.WriteString(ErrorStyle.Render(view.Error) + "\n")
	}
	if view.Loading {
		b.WriteString(MutedStyle.Render("Loading meals...\n"))
	}

	if len(view.Meals) == 0 && !view.Loading {
		b.WriteString(EmptyStateStyle.Render("No meals here yet.") + "\n")
	}

	for i, meal := range view.Meals {
		marker := "  "
		if m.stores.Favorites.IsFavorite(meal.ID) {
			marker = "♥ "
		}
		line := fmt.Sprintf("%s%s", marker, meal.Name)
		if m.stores.Plans.IsQueued(meal.ID) {
			line += MutedStyle.Render("  [shortlisted]")
		}
		if i == m.cursor {
			b.WriteString(SelectedRowStyle.Render(line) + "\n")
		} else {
			b.WriteString(NormalRowStyle.Render(line) + "\n")
		}
	}

	b.WriteString(MutedStyle.Render(fmt.Sprintf(
		"\nPage %d/%d · %d meals · %d per page (+/-)",
		view.Page, view.TotalPages, view.Total, view.Limit)))
	return b.String()
}

// neighborCategory steps through the category list, wrapping at the ends.
func neighborCategory(categories []string, current string, forward bool) string {
	if len(categories) == 0 {
		return ""
	}
	for i, category := range categories {
		if category != current {
			continue
		}
		step := 1
		if !forward {
			step = len(categories) - 1
		}
		return categories[(i+step)%len(categories)]
	}
	return categories[0]
}
