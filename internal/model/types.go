package model

import "time"

// Status tracks the lifecycle of an asynchronous operation.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// RecipeSummary is the minimal recipe projection used in lists, favorites
// and the suggestion queue.
type RecipeSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Category string `json:"category,omitempty"`
	Area     string `json:"area,omitempty"`
}

// Ingredient is a single ingredient line on a recipe detail.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// RecipeDetail is the full recipe record. Raw keeps the original API
// payload so callers can reach fields the normalizer does not project.
type RecipeDetail struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	Area         string         `json:"area"`
	Instructions string         `json:"instructions"`
	Thumbnail    string         `json:"thumbnail"`
	Tags         []string       `json:"tags"`
	YouTube      string         `json:"youtube"`
	Source       string         `json:"source"`
	Ingredients  []Ingredient   `json:"ingredients"`
	Raw          map[string]any `json:"raw"`
}

// Summary projects a detail down to its list shape.
func (d *RecipeDetail) Summary() RecipeSummary {
	return RecipeSummary{
		ID:       d.ID,
		Name:     d.Name,
		Image:    d.Thumbnail,
		Category: d.Category,
		Area:     d.Area,
	}
}

// Suggestion is a recipe surfaced for the planner's current
// category/area selection.
type Suggestion struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Area      string   `json:"area"`
	Tags      []string `json:"tags"`
	Thumbnail string   `json:"thumbnail"`
}

// Summary converts a suggestion into the queue/favorite shape.
func (s Suggestion) Summary() RecipeSummary {
	return RecipeSummary{
		ID:       s.ID,
		Name:     s.Name,
		Image:    s.Thumbnail,
		Category: s.Category,
		Area:     s.Area,
	}
}

// SearchResult combines the raw search hit with its forced detail fetch.
type SearchResult struct {
	RecipeSummary
	Detail *RecipeDetail
}

// PlanForm holds the user-editable fields of a meal plan.
type PlanForm struct {
	Title          string `json:"title"`
	Email          string `json:"email"`
	Date           string `json:"date"` // ISO date (YYYY-MM-DD)
	Servings       int    `json:"servings"`
	Category       string `json:"category"`
	Area           string `json:"area"`
	Ingredient     string `json:"ingredient"`
	IncludeDessert bool   `json:"includeDessert"`
	Notes          string `json:"notes"`
}

// MealPlan is a saved plan. ID and CreatedAt are generated on add;
// a plan is immutable after creation except for deletion.
type MealPlan struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	PlanForm
}
