package store

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"forkful/internal/mealdb"
	"forkful/internal/model"
)

// maxIngredients caps the ingredient lookup list so the planner's
// ingredient selector stays bounded.
const maxIngredients = 50

// Metadata holds the three global lookup lists. They are fetched at most
// once per session.
type Metadata struct {
	mu  sync.Mutex
	api *mealdb.Client

	categories  []string
	areas       []string
	ingredients []string
	status      model.Status
	err         string
}

// NewMetadata creates an empty metadata store.
func NewMetadata(api *mealdb.Client) *Metadata {
	return &Metadata{api: api, status: model.StatusIdle}
}

// Init fetches categories, areas and ingredients concurrently. It is
// idempotent: a call while loading or after success is a no-op. On any
// partial failure nothing is committed and a single error is recorded,
// leaving the lists at their pre-call values.
func (m *Metadata) Init(ctx context.Context) {
	m.mu.Lock()
	if m.status == model.StatusLoading || m.status == model.StatusSuccess {
		m.mu.Unlock()
		return
	}
	m.status = model.StatusLoading
	m.err = ""
	m.mu.Unlock()

	var categories, areas, ingredients []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = m.api.Categories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		areas, err = m.api.Areas(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		ingredients, err = m.api.Ingredients(gctx)
		return err
	})

	err := g.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.status = model.StatusError
		m.err = errorMessage(err)
		return
	}

	if len(ingredients) > maxIngredients {
		ingredients = ingredients[:maxIngredients]
	}
	m.categories = categories
	m.areas = areas
	m.ingredients = ingredients
	m.status = model.StatusSuccess
}

// Categories returns the cached category list.
func (m *Metadata) Categories() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.categories...)
}

// Areas returns the cached area list.
func (m *Metadata) Areas() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.areas...)
}

// Ingredients returns the cached ingredient list (first 50 entries).
func (m *Metadata) Ingredients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.ingredients...)
}

// Status reports the fetch lifecycle state.
func (m *Metadata) Status() model.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Error returns the recorded fetch error message, if any.
func (m *Metadata) Error() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}
