package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"forkful/internal/model"
	"forkful/internal/store"
)

// Stores bundles the state containers the UI consumes. It is assembled in
// the composition root so tests can run screens against isolated
// instances.
type Stores struct {
	Catalog     *store.Catalog
	Metadata    *store.Metadata
	Details     *store.DetailCache
	Search      *store.Search
	Suggestions *store.Suggestions
	Favorites   *store.Favorites
	Plans       *store.Plans
}

// Store actions block on network I/O, so each runs inside a tea.Cmd
// goroutine and reports back with a marker message; the views then
// re-read the store selectors.

func initCatalogCmd(catalog *store.Catalog) tea.Cmd {
	return func() tea.Msg {
		catalog.Init(context.Background())
		return model.CatalogUpdatedMsg{}
	}
}

func setCategoryCmd(catalog *store.Catalog, category string) tea.Cmd {
	return func() tea.Msg {
		catalog.SetCategory(context.Background(), category)
		return model.CatalogUpdatedMsg{}
	}
}

func initMetadataCmd(metadata *store.Metadata) tea.Cmd {
	return func() tea.Msg {
		metadata.Init(context.Background())
		return model.MetadataUpdatedMsg{}
	}
}

func searchCmd(search *store.Search, term string) tea.Cmd {
	return func() tea.Msg {
		search.Do(context.Background(), term)
		return model.SearchDoneMsg{}
	}
}

func fetchDetailCmd(details *store.DetailCache, id string) tea.Cmd {
	return func() tea.Msg {
		details.Fetch(context.Background(), id, false)
		return model.DetailFetchedMsg{ID: id}
	}
}

func refreshSuggestionsCmd(suggestions *store.Suggestions, category, area string, limit int) tea.Cmd {
	return func() tea.Msg {
		suggestions.Refresh(context.Background(), category, area, limit)
		return model.SuggestionsUpdatedMsg{Category: category, Area: area}
	}
}
