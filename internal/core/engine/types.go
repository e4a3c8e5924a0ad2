// Package engine is the recipe synthesis core: catalog matching, similarity
// ranking, dynamic generation and the enrichment pass that styles a bare
// recipe into user-facing prose.
package engine

import (
	"chucklechow/internal/core/catalog"
	"chucklechow/internal/pkg/common"
)

// Recipe is the engine's output. It is created fresh per request and never
// mutated after being handed to the caller.
type Recipe struct {
	ID          int64               `json:"id,omitempty"`
	Title       string              `json:"title"`
	Ingredients []common.Ingredient `json:"ingredients"`
	Steps       []string            `json:"steps"`
	Nutrition   common.Nutrition    `json:"nutrition"`
	CookingTime int                 `json:"cooking_time"`
	Difficulty  string              `json:"difficulty"`
	Equipment   []string            `json:"equipment"`
	ChaosGear   string              `json:"chaos_gear,omitempty"`
	Servings    int                 `json:"servings"`
	Tips        string              `json:"tips"`
	ShareText   string              `json:"share_text,omitempty"`

	// InputIngredients carries the caller's requested names so the
	// enrichment pass styles against the request rather than the record's
	// full ingredient list. Never serialized.
	InputIngredients []string `json:"-"`
}

// FromRecord converts a catalog record into an engine recipe. Catalog
// ingredients carry a flat 100g quantity until enrichment re-measures them.
// Locale variants on the record are dropped here and never reappear.
func FromRecord(rec catalog.Record) Recipe {
	ingredients := make([]common.Ingredient, 0, len(rec.Ingredients))
	for _, name := range rec.Ingredients {
		ingredients = append(ingredients, common.Ingredient{Name: name, Quantity: "100g"})
	}

	equipment := rec.Equipment
	if len(equipment) == 0 {
		equipment = []string{"skillet"}
	}
	servings := rec.Servings
	if servings == 0 {
		servings = 2
	}
	tips := rec.Tips
	if tips == "" {
		tips = "Season to taste!"
	}

	return Recipe{
		ID:          rec.ID,
		Title:       rec.Title,
		Ingredients: ingredients,
		Steps:       rec.Steps,
		Nutrition:   rec.Nutrition,
		CookingTime: rec.CookingTime,
		Difficulty:  rec.Difficulty,
		Equipment:   equipment,
		Servings:    servings,
		Tips:        tips,
	}
}

// ErrorRecipe is the fixed fallback when enrichment fails unexpectedly. The
// caller still receives a structurally valid recipe.
func ErrorRecipe() Recipe {
	return Recipe{
		Title:       "Error Recipe",
		Ingredients: []common.Ingredient{{Name: "unknown grub", Quantity: "1 unit"}},
		Steps:       []string{"Something went wrong!"},
		Nutrition:   common.Nutrition{},
		Difficulty:  "N/A",
		Tips:        "Try again later!",
	}
}
