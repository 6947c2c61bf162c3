package store

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"forkful/internal/mealdb"
	"forkful/internal/model"
)

// Suggestions derives candidate recipes from the planner's current
// (category, area) pair and resolves each candidate to full detail
// through the shared cache.
type Suggestions struct {
	mu      sync.Mutex
	api     *mealdb.Client
	details *DetailCache

	generation  int
	suggestions []model.Suggestion
	loading     bool
	err         string
}

// NewSuggestions creates a suggestion engine over the given client and
// cache.
func NewSuggestions(api *mealdb.Client, details *DetailCache) *Suggestions {
	return &Suggestions{api: api, details: details}
}

// Refresh recomputes suggestions for a (category, area, limit) input. A
// later Refresh supersedes an in-flight one: each invocation captures a
// generation number and only the newest is allowed to commit, so stale
// results are discarded rather than overwriting current ones.
//
// Candidates: with both filters, the category-filtered list kept in order
// and restricted to ids also present in the area set; with one filter,
// that filter's list. Candidates are deduplicated by id preserving
// first-seen order and capped at limit before the parallel forced detail
// fetches. Details that fail resolve drop out silently; a failed list
// fetch surfaces as a single aggregate error.
func (s *Suggestions) Refresh(ctx context.Context, category, area string, limit int) {
	s.mu.Lock()
	s.generation++
	generation := s.generation

	if category == "" && area == "" {
		s.suggestions = nil
		s.loading = false
		s.err = ""
		s.mu.Unlock()
		return
	}
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	var categoryMeals, areaMeals []model.RecipeSummary

	g, gctx := errgroup.WithContext(ctx)
	if category != "" {
		g.Go(func() error {
			var err error
			categoryMeals, err = s.api.FilterByCategory(gctx, category)
			return err
		})
	}
	if area != "" {
		g.Go(func() error {
			var err error
			areaMeals, err = s.api.FilterByArea(gctx, area)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		s.commitError(generation, errorMessage(err))
		return
	}

	var candidates []model.RecipeSummary
	switch {
	case category != "" && area != "":
		inArea := make(map[string]bool, len(areaMeals))
		for _, meal := range areaMeals {
			inArea[meal.ID] = true
		}
		for _, meal := range categoryMeals {
			if inArea[meal.ID] {
				candidates = append(candidates, meal)
			}
		}
	case category != "":
		candidates = categoryMeals
	default:
		candidates = areaMeals
	}

	seen := make(map[string]bool, len(candidates))
	var ids []string
	for _, meal := range candidates {
		if meal.ID == "" || seen[meal.ID] {
			continue
		}
		seen[meal.ID] = true
		ids = append(ids, meal.ID)
		if len(ids) == limit {
			break
		}
	}

	details := make([]*model.RecipeDetail, len(ids))
	var dg errgroup.Group
	for i, id := range ids {
		i, id := i, id
		dg.Go(func() error {
			details[i] = s.details.Fetch(ctx, id, true)
			return nil
		})
	}
	_ = dg.Wait()

	suggestions := make([]model.Suggestion, 0, len(details))
	for _, detail := range details {
		if detail == nil {
			continue
		}
		suggestions = append(suggestions, model.Suggestion{
			ID:        detail.ID,
			Name:      detail.Name,
			Category:  detail.Category,
			Area:      detail.Area,
			Tags:      detail.Tags,
			Thumbnail: detail.Thumbnail,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return
	}
	s.suggestions = suggestions
	s.loading = false
}

// commitError records a failure unless a newer Refresh superseded this one.
func (s *Suggestions) commitError(generation int, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return
	}
	s.err = msg
	s.loading = false
}

// List returns the current suggestions.
func (s *Suggestions) List() []model.Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Suggestion(nil), s.suggestions...)
}

// Loading reports whether a recompute is in flight.
func (s *Suggestions) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Error returns the current aggregate error message, if any.
func (s *Suggestions) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
