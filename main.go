package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"forkful/cmd"
	"forkful/internal/mealdb"
	"forkful/internal/storage"
	"forkful/internal/store"
	"forkful/internal/ui"
)

func main() {
	config, err := cmd.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Fall back to in-memory state when the database cannot open.
	var persist storage.Store
	var closer io.Closer
	db, err := storage.OpenSQLite(config.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ℹ  %v — continuing without persistence\n", err)
		persist = storage.NewMemory()
	} else {
		persist = db
		closer = db
	}
	if closer != nil {
		defer closer.Close()
	}

	api := mealdb.NewClient(config.APIBase)
	details := store.NewDetailCache(api)

	catalog := store.NewCatalog(api, persist)
	if config.PageLimit != store.DefaultPageLimit {
		catalog.SetLimit(config.PageLimit)
	}

	stores := ui.Stores{
		Catalog:     catalog,
		Metadata:    store.NewMetadata(api),
		Details:     details,
		Search:      store.NewSearch(api, details),
		Suggestions: store.NewSuggestions(api, details),
		Favorites:   store.NewFavorites(persist),
		Plans:       store.NewPlans(persist),
	}

	p := tea.NewProgram(ui.New(stores), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
