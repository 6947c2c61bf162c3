package model

// Bubble Tea message types. Store actions run inside tea.Cmd goroutines;
// these markers tell the program loop to re-read the store selectors.

// CatalogUpdatedMsg is sent when a catalog action (init, category switch,
// meal fetch) has completed.
type CatalogUpdatedMsg struct{}

// MetadataUpdatedMsg is sent when the metadata initialisation finished.
type MetadataUpdatedMsg struct{}

// SearchDoneMsg is sent when a search cycle finished.
type SearchDoneMsg struct{}

// DetailFetchedMsg is sent when a detail fetch settled for an id.
type DetailFetchedMsg struct {
	ID string
}

// SuggestionsUpdatedMsg is sent when a suggestion refresh settled for
// the given inputs.
type SuggestionsUpdatedMsg struct {
	Category string
	Area     string
}

// Screen represents the app screens.
type Screen int

const (
	ScreenBrowse Screen = iota
	ScreenSearch
	ScreenFavorites
	ScreenPlanner
	ScreenDetail
)
