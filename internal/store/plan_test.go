package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forkful/internal/model"
	"forkful/internal/storage"
)

func samplePlanForm() model.PlanForm {
	return model.PlanForm{
		Title:          "Italian Night",
		Email:          "chef@example.com",
		Date:           "2026-09-04",
		Servings:       4,
		Category:       "Pasta",
		Area:           "Italian",
		Ingredient:     "Basil",
		IncludeDessert: true,
		Notes:          "Double the garlic.",
	}
}

func TestPlansAddGeneratesIdentity(t *testing.T) {
	plans := NewPlans(storage.NewMemory())
	before := time.Now().UTC()

	plan := plans.Add(samplePlanForm())

	assert.NotEmpty(t, plan.ID)
	assert.False(t, plan.CreatedAt.Before(before))
	assert.Equal(t, samplePlanForm(), plan.PlanForm, "all supplied fields preserved verbatim")

	list := plans.List()
	require.Len(t, list, 1)
	assert.Equal(t, plan, list[0])
}

func TestPlansAppendOnlyAllowsDuplicates(t *testing.T) {
	plans := NewPlans(storage.NewMemory())
	first := plans.Add(samplePlanForm())
	second := plans.Add(samplePlanForm())

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, plans.List(), 2)
}

func TestPlansRemoveLeavesOthersUntouched(t *testing.T) {
	plans := NewPlans(storage.NewMemory())
	keep := plans.Add(samplePlanForm())
	drop := plans.Add(samplePlanForm())

	plans.Remove(drop.ID)

	list := plans.List()
	require.Len(t, list, 1)
	assert.Equal(t, keep, list[0])

	plans.Remove("no-such-id")
	assert.Len(t, plans.List(), 1)
}

func TestPlansClearKeepsQueue(t *testing.T) {
	plans := NewPlans(storage.NewMemory())
	plans.Add(samplePlanForm())
	plans.AddSuggested(sampleMeal("1", "Stew"))

	plans.ClearPlans()
	assert.Empty(t, plans.List())
	assert.Len(t, plans.Queue(), 1, "clearing plans leaves the queue alone")
}

func TestSuggestionQueueUpsert(t *testing.T) {
	plans := NewPlans(storage.NewMemory())

	plans.AddSuggested(model.RecipeSummary{Name: "No id"})
	assert.Empty(t, plans.Queue(), "a meal without an id is ignored")

	plans.AddSuggested(sampleMeal("1", "Stew"))
	plans.AddSuggested(model.RecipeSummary{ID: "1", Name: "Stew (renamed)"})

	queue := plans.Queue()
	require.Len(t, queue, 1, "same id upserts")
	assert.Equal(t, "Stew (renamed)", queue[0].Name)
	assert.True(t, plans.IsQueued("1"))

	plans.RemoveSuggested("1")
	assert.Empty(t, plans.Queue())

	plans.AddSuggested(sampleMeal("2", "Pie"))
	plans.ClearSuggestions()
	assert.Empty(t, plans.Queue())
}

func TestPlansRoundTripPersistence(t *testing.T) {
	persist := storage.NewMemory()

	first := NewPlans(persist)
	plan := first.Add(samplePlanForm())
	first.AddSuggested(sampleMeal("1", "Stew"))

	second := NewPlans(persist)
	list := second.List()
	require.Len(t, list, 1)
	assert.Equal(t, plan.ID, list[0].ID)
	assert.Equal(t, plan.PlanForm, list[0].PlanForm)
	assert.True(t, plan.CreatedAt.Equal(list[0].CreatedAt))
	assert.True(t, second.IsQueued("1"))
}
