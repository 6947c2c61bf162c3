package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"forkful/internal/model"
	"forkful/internal/storage"
)

const (
	planStoreName    = "meal-planner"
	planStoreVersion = 1
)

type planSnapshot struct {
	Plans       []model.MealPlan               `json:"plans"`
	Suggestions map[string]model.RecipeSummary `json:"suggestions"`
}

// Plans is the persisted list of user-created meal plans plus the
// persisted suggestion queue. The plan list is append-only with no
// deduplication; identical plans are valid. Every mutation persists
// immediately.
type Plans struct {
	mu          sync.Mutex
	persist     storage.Store
	plans       []model.MealPlan
	suggestions map[string]model.RecipeSummary
}

// NewPlans creates a plan store, restoring any persisted snapshot.
func NewPlans(persist storage.Store) *Plans {
	p := &Plans{
		persist:     persist,
		suggestions: make(map[string]model.RecipeSummary),
	}

	var snap planSnapshot
	if storage.LoadState(persist, planStoreName, planStoreVersion, &snap) {
		p.plans = snap.Plans
		if snap.Suggestions != nil {
			p.suggestions = snap.Suggestions
		}
	}
	return p
}

// Add appends a plan built from the form fields, generating a fresh id
// and creation timestamp. The created plan is returned.
func (p *Plans) Add(form model.PlanForm) model.MealPlan {
	plan := model.MealPlan{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		PlanForm:  form,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.plans = append(p.plans, plan)
	p.persistLocked()
	return plan
}

// Remove deletes a plan by id, leaving the rest untouched.
func (p *Plans) Remove(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	kept := p.plans[:0]
	for _, plan := range p.plans {
		if plan.ID != id {
			kept = append(kept, plan)
		}
	}
	p.plans = kept
	p.persistLocked()
}

// ClearPlans empties the plan list, leaving the suggestion queue alone.
func (p *Plans) ClearPlans() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.plans = nil
	p.persistLocked()
}

// List returns the plans in creation order.
func (p *Plans) List() []model.MealPlan {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.MealPlan(nil), p.plans...)
}

// AddSuggested upserts a meal into the suggestion queue keyed by id.
// A meal without an id is ignored.
func (p *Plans) AddSuggested(meal model.RecipeSummary) {
	if meal.ID == "" {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.suggestions[meal.ID] = meal
	p.persistLocked()
}

// RemoveSuggested deletes a queued meal by id.
func (p *Plans) RemoveSuggested(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.suggestions, id)
	p.persistLocked()
}

// ClearSuggestions empties the queue, leaving the plan list alone.
func (p *Plans) ClearSuggestions() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.suggestions = make(map[string]model.RecipeSummary)
	p.persistLocked()
}

// IsQueued reports whether a meal id is in the suggestion queue.
func (p *Plans) IsQueued(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.suggestions[id]
	return ok
}

// Queue returns the queued meals sorted by name for a stable display
// order.
func (p *Plans) Queue() []model.RecipeSummary {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]model.RecipeSummary, 0, len(p.suggestions))
	for _, meal := range p.suggestions {
		out = append(out, meal)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (p *Plans) persistLocked() {
	_ = storage.SaveState(p.persist, planStoreName, planStoreVersion, planSnapshot{
		Plans:       p.plans,
		Suggestions: p.suggestions,
	})
}
