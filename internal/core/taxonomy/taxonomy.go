// Package taxonomy classifies ingredient names into a closed set of
// categories and owns the static lookup tables the recipe engine keys off:
// default quantities, cook times, per-100g nutrition and pairing affinities.
// All tables are built once at init and read-only afterwards.
package taxonomy

import (
	"sort"
	"strings"

	"chucklechow/internal/pkg/common"
)

// Category is an ingredient class. Every known ingredient belongs to exactly
// one category; anything else classifies as CategoryUnknown.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryMeat
	CategoryVegetable
	CategoryFruit
	CategorySeafood
	CategoryDairy
	CategoryStarch
	CategoryBooze
)

var categoryNames = map[Category]string{
	CategoryUnknown:   "unknown",
	CategoryMeat:      "meat",
	CategoryVegetable: "vegetable",
	CategoryFruit:     "fruit",
	CategorySeafood:   "seafood",
	CategoryDairy:     "dairy",
	CategoryStarch:    "starch",
	CategoryBooze:     "alcoholic-liquid",
}

func (c Category) String() string {
	return categoryNames[c]
}

// categoryIndex is the single name->category table, built once from the
// per-category name lists in tables.go.
var categoryIndex = buildIndex()

func buildIndex() map[string]Category {
	idx := make(map[string]Category)
	for cat, names := range categoryMembers {
		for _, name := range names {
			idx[name] = cat
		}
	}
	return idx
}

// Classify returns the category for an ingredient name. Lookups are
// case-insensitive and idempotent.
func Classify(name string) Category {
	return categoryIndex[strings.ToLower(strings.TrimSpace(name))]
}

// IsLiquid reports whether an ingredient is measured as a liquid: the
// alcoholic category plus milk.
func IsLiquid(name string) bool {
	key := strings.ToLower(strings.TrimSpace(name))
	return categoryIndex[key] == CategoryBooze || key == "milk"
}

// IsBoilStarch reports whether an ingredient gets the dedicated
// boil-and-drain treatment.
func IsBoilStarch(name string) bool {
	key := strings.ToLower(strings.TrimSpace(name))
	return key == "rice" || key == "potato"
}

// DefaultQuantity resolves the default quantity string for an ingredient.
// Liquids resolve before the dairy class so milk measures as a liquid.
func DefaultQuantity(name string) string {
	if IsLiquid(name) {
		return "1/2 cup"
	}
	switch Classify(name) {
	case CategoryMeat:
		return "1 lb"
	case CategoryDairy:
		return "2 tbsp"
	default:
		return "1 cup"
	}
}

// CookTime returns the cook time in minutes for an ingredient, or fallback
// when the ingredient has no table entry.
func CookTime(name string, fallback int) int {
	if t, ok := cookTimes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return fallback
}

// NutritionBase returns the per-100g nutrition for an ingredient, falling
// back to a generic entry for unknown names.
func NutritionBase(name string) common.Nutrition {
	if n, ok := nutritionBase[strings.ToLower(strings.TrimSpace(name))]; ok {
		return n
	}
	return genericNutrition
}

// Pairings returns the complementary ingredients for a name, or nil.
func Pairings(name string) []string {
	return ingredientPairs[strings.ToLower(strings.TrimSpace(name))]
}

// MethodPreferences returns the cooking methods an ingredient biases the
// enrichment sample pool toward, or nil.
func MethodPreferences(name string) []string {
	return methodPreferences[strings.ToLower(strings.TrimSpace(name))]
}

// Measurement returns the enrichment-pass quantity and preparation for a
// category.
func Measurement(c Category) (quantity, preparation string) {
	m, ok := measurements[c]
	if !ok {
		return "1 unit", ""
	}
	return m[0], m[1]
}

// Categories returns the known ingredient names grouped by category name,
// each group sorted, for the ingredient listing endpoint.
func Categories() map[string][]string {
	out := make(map[string][]string, len(categoryMembers))
	for cat, names := range categoryMembers {
		sorted := make([]string, len(names))
		copy(sorted, names)
		sort.Strings(sorted)
		out[cat.String()] = sorted
	}
	return out
}
