package mealdb

import (
	"fmt"
	"strings"

	"forkful/internal/model"
)

// ingredientSlots is the fixed number of positional ingredient/measure
// pairs in a full meal record.
const ingredientSlots = 20

// field reads a string field from a raw record. Missing, null, or
// non-string values report ok=false.
func field(record map[string]any, key string) (string, bool) {
	value, ok := record[key]
	if !ok || value == nil {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

func fieldOr(record map[string]any, key, fallback string) string {
	if s, ok := field(record, key); ok {
		return s
	}
	return fallback
}

// parseIngredients walks the 20 positional slots. An entry is kept only if
// its name is non-empty after trimming; a missing measure defaults to "-".
func parseIngredients(record map[string]any) []model.Ingredient {
	var entries []model.Ingredient
	for slot := 1; slot <= ingredientSlots; slot++ {
		name, _ := field(record, fmt.Sprintf("strIngredient%d", slot))
		measure, _ := field(record, fmt.Sprintf("strMeasure%d", slot))

		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		measure = strings.TrimSpace(measure)
		if measure == "" {
			measure = "-"
		}
		entries = append(entries, model.Ingredient{Name: name, Measure: measure})
	}
	return entries
}

func parseTags(record map[string]any) []string {
	raw, ok := field(record, "strTags")
	if !ok || raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// normalizeRecord converts a raw meal record into a RecipeDetail. The
// original payload is retained on Raw.
func normalizeRecord(record map[string]any) *model.RecipeDetail {
	instructions := "Instructions are not available."
	if s, ok := field(record, "strInstructions"); ok {
		instructions = strings.TrimSpace(s)
	}

	return &model.RecipeDetail{
		ID:           fieldOr(record, "idMeal", ""),
		Name:         fieldOr(record, "strMeal", ""),
		Category:     fieldOr(record, "strCategory", "Uncategorised"),
		Area:         fieldOr(record, "strArea", "Unknown"),
		Instructions: instructions,
		Thumbnail:    fieldOr(record, "strMealThumb", ""),
		Tags:         parseTags(record),
		YouTube:      fieldOr(record, "strYoutube", ""),
		Source:       fieldOr(record, "strSource", ""),
		Ingredients:  parseIngredients(record),
		Raw:          record,
	}
}
