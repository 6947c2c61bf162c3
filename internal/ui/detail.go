package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"forkful/internal/model"
)

// DetailModel shows one recipe's full detail, read reactively from the
// detail cache.
type DetailModel struct {
	stores Stores
	keys   KeyMap
	id     string
	scroll int
}

// NewDetailModel creates the detail screen.
func NewDetailModel(stores Stores, keys KeyMap) DetailModel {
	return DetailModel{stores: stores, keys: keys}
}

// Open points the screen at a recipe id.
func (m DetailModel) Open(id string) DetailModel {
	m.id = id
	m.scroll = 0
	return m
}

// Update handles detail keys.
func (m DetailModel) Update(msg tea.KeyMsg) (DetailModel, tea.Cmd) {
	detail := m.stores.Details.Detail(m.id)

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.scroll > 0 {
			m.scroll--
		}

	case key.Matches(msg, m.keys.Down):
		m.scroll++

	case key.Matches(msg, m.keys.Favorite):
		if detail != nil {
			m.stores.Favorites.Toggle(detail.Summary())
		}

	case key.Matches(msg, m.keys.Queue):
		if detail != nil {
			m.stores.Plans.AddSuggested(detail.Summary())
		}

	case msg.String() == "r":
		// Manual retry bypasses the cache.
		return m, func() tea.Msg {
			m.stores.Details.Fetch(context.Background(), m.id, true)
			return model.DetailFetchedMsg{ID: m.id}
		}
	}

	return m, nil
}

// View renders the detail screen.
func (m DetailModel) View(width int) string {
	cache := m.stores.Details
	var b strings.Builder

	switch cache.Status(m.id) {
	case model.StatusLoading:
		return MutedStyle.Render("Loading recipe...")
	case model.StatusError:
		return ErrorStyle.Render(cache.Error(m.id)) +
			MutedStyle.Render("\nr: retry · esc: back")
	}

	detail := cache.Detail(m.id)
	if detail == nil {
		return EmptyStateStyle.Render("Nothing to show.")
	}

	fav := ""
	if m.stores.Favorites.IsFavorite(detail.ID) {
		fav = " ♥"
	}
	b.WriteString(LabelStyle.Render(detail.Name+fav) + "\n")
	b.WriteString(MutedStyle.Render(detail.Category+" · "+detail.Area) + "\n")
	if len(detail.Tags) > 0 {
		b.WriteString(MutedStyle.Render("Tags: "+strings.Join(detail.Tags, ", ")) + "\n")
	}

	b.WriteString("\n" + LabelStyle.Render("Ingredients") + "\n")
	for _, ingredient := range detail.Ingredients {
		b.WriteString(fmt.Sprintf("  %s — %s\n", ingredient.Name, ingredient.Measure))
	}

	b.WriteString("\n" + LabelStyle.Render("Instructions") + "\n")
	b.WriteString(scrollText(detail.Instructions, m.scroll, 12) + "\n")

	if detail.YouTube != "" {
		b.WriteString(MutedStyle.Render("Video: "+detail.YouTube) + "\n")
	}
	if detail.Source != "" {
		b.WriteString(MutedStyle.Render("Source: "+detail.Source) + "\n")
	}
	b.WriteString(MutedStyle.Render("\nj/k: scroll · f: favorite · s: shortlist · esc: back"))
	return b.String()
}

// scrollText windows the instruction text by line offset.
func scrollText(text string, offset, height int) string {
	lines := strings.Split(text, "\n")
	if offset > len(lines)-1 {
		offset = len(lines) - 1
	}
	if offset < 0 {
		offset = 0
	}
	end := min(offset+height, len(lines))
	return strings.Join(lines[offset:end], "\n")
}
