package nutrition

import (
	"chucklechow/internal/core/taxonomy"
	"chucklechow/internal/pkg/common"
)

// Estimate accumulates nutrition for a list of quantified ingredients
// against the per-100g base table. Pure and deterministic.
func Estimate(items []common.Ingredient) common.Nutrition {
	var total common.Nutrition
	for _, item := range items {
		grams := QuantityGrams(item.Quantity)
		base := taxonomy.NutritionBase(item.Name)
		total.Add(base.Scale(grams / 100))
	}
	return total
}
