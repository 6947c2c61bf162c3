package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"forkful/internal/model"
)

// SearchModel is the name-search screen: an input over the single
// combined result.
type SearchModel struct {
	stores Stores
	keys   KeyMap
	input  textinput.Model
}

// NewSearchModel creates the search screen with the input focused.
func NewSearchModel(stores Stores, keys KeyMap) SearchModel {
	input := textinput.New()
	input.Placeholder = "Search recipes by name..."
	input.CharLimit = 100
	input.Focus()
	return SearchModel{stores: stores, keys: keys, input: input}
}

// Editing reports whether the input holds keyboard focus.
func (m SearchModel) Editing() bool {
	return m.input.Focused()
}

// Update handles search keys. A non-empty open id asks the root to show
// the detail screen.
func (m SearchModel) Update(msg tea.KeyMsg) (SearchModel, tea.Cmd, string) {
	search := m.stores.Search

	if m.input.Focused() {
		switch msg.String() {
		case "enter":
			return m, searchCmd(search, m.input.Value()), ""
		case "esc":
			m.input.Blur()
			return m, nil, ""
		case "ctrl+u":
			m.input.SetValue("")
			search.Clear()
			return m, nil, ""
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd, ""
	}

	result := search.Result()
	switch {
	case msg.String() == "i" || msg.String() == "/":
		m.input.Focus()

	case key.Matches(msg, m.keys.Favorite):
		if result != nil {
			m.stores.Favorites.Toggle(result.RecipeSummary)
		}

	case key.Matches(msg, m.keys.Queue):
		if result != nil {
			m.stores.Plans.AddSuggested(result.RecipeSummary)
		}

	case key.Matches(msg, m.keys.Select):
		if result != nil {
			return m, nil, result.ID
		}

	case key.Matches(msg, m.keys.Clear):
		m.input.SetValue("")
		search.Clear()
	}

	return m, nil, ""
}

// View renders the search screen.
func (m SearchModel) View(width int) string {
	search := m.stores.Search
	var b strings.Builder

	b.WriteString(m.input.View() + "\n")

	switch search.Status() {
	case model.StatusLoading:
		b.WriteString(MutedStyle.Render("Searching...\n"))
	case model.StatusError:
		b.WriteString(ErrorStyle.Render(search.Error()) + "\n")
	}
	if search.Status() == model.StatusIdle && search.Error() != "" {
		b.WriteString(ErrorStyle.Render(search.Error()) + "\n")
	}

	result := search.Result()
	if result == nil {
		if search.Status() == model.StatusIdle && search.Error() == "" {
			b.WriteString(EmptyStateStyle.Render("Type a recipe name and press enter."))
		}
		return b.String()
	}

	b.WriteString("\n" + LabelStyle.Render(result.Name) + "\n")
	meta := result.Category
	if result.Area != "" {
		meta += " · " + result.Area
	}
	b.WriteString(MutedStyle.Render(meta) + "\n")

	if detail := result.Detail; detail != nil {
		b.WriteString(MutedStyle.Render(ingredientSummary(detail)) + "\n")
	}
	b.WriteString(MutedStyle.Render("\nenter: open · f: favorite · s: shortlist · esc/i: edit query"))
	return b.String()
}

// ingredientSummary renders a short comma list of the first ingredients.
func ingredientSummary(detail *model.RecipeDetail) string {
	const shown = 4
	names := make([]string, 0, shown+1)
	for i, ingredient := range detail.Ingredients {
		if i == shown {
			names = append(names, "…")
			break
		}
		names = append(names, ingredient.Name)
	}
	return strings.Join(names, ", ")
}
