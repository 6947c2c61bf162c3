package store

import (
	"context"
	"strings"
	"sync"

	"forkful/internal/mealdb"
	"forkful/internal/model"
)

const emptyTermMessage = "Please enter a recipe name before searching."

// Search performs name-based recipe lookup. Only the first API match is
// used; its full detail is force-fetched through the shared detail cache
// and combined into the result.
type Search struct {
	mu      sync.Mutex
	api     *mealdb.Client
	details *DetailCache

	query  string
	status model.Status
	err    string
	result *model.SearchResult
}

// NewSearch creates a search engine over the given client and cache.
func NewSearch(api *mealdb.Client, details *DetailCache) *Search {
	return &Search{api: api, details: details, status: model.StatusIdle}
}

// Do runs a search. The term is whitespace-normalized first; an empty
// term yields a local validation error and never reaches the network.
// Do is re-entrant: a new call from any state restarts the cycle.
func (s *Search) Do(ctx context.Context, term string) *model.SearchResult {
	value := strings.Join(strings.Fields(term), " ")

	s.mu.Lock()
	s.query = value
	if value == "" {
		s.err = emptyTermMessage
		s.result = nil
		s.status = model.StatusIdle
		s.mu.Unlock()
		return nil
	}
	s.status = model.StatusLoading
	s.err = ""
	s.mu.Unlock()

	matches, err := s.api.SearchByName(ctx, value)
	if err != nil {
		return s.fail(errorMessage(err))
	}
	if len(matches) == 0 {
		return s.fail("Recipe not found. Try a different name.")
	}

	match := matches[0]
	detail := s.details.Fetch(ctx, match.ID, true)
	if detail == nil {
		msg := s.details.Error(match.ID)
		if msg == "" {
			msg = "Unable to find that recipe. Please double check the spelling."
		}
		return s.fail(msg)
	}

	result := &model.SearchResult{RecipeSummary: match, Detail: detail}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = result
	s.status = model.StatusSuccess
	return result
}

func (s *Search) fail(msg string) *model.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
	s.status = model.StatusError
	s.result = nil
	return nil
}

// Clear resets query, result, error and status to initial.
func (s *Search) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = ""
	s.result = nil
	s.err = ""
	s.status = model.StatusIdle
}

// Query returns the last normalized search term.
func (s *Search) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Status reports the search lifecycle state.
func (s *Search) Status() model.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Error returns the current error message, if any.
func (s *Search) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Result returns the current combined result, if any.
func (s *Search) Result() *model.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}
