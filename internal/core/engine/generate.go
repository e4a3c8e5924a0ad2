package engine

import (
	"fmt"
	"strings"

	"chucklechow/internal/core/nutrition"
	"chucklechow/internal/core/taxonomy"
	"chucklechow/internal/pkg/common"
)

// Generate synthesizes a recipe from scratch when no catalog match exists.
// It is fully deterministic: all randomness lives in the enrichment pass.
// Empty input yields the fixed no-ingredients placeholder; this never fails.
func Generate(ingredients []string, preferences map[string]string) Recipe {
	names := normalizeNames(ingredients)
	if len(names) == 0 {
		return noIngredientsRecipe()
	}

	diet := strings.ToLower(preferences["diet"])

	var liquids, solids []string
	for _, name := range names {
		if taxonomy.IsLiquid(name) {
			liquids = append(liquids, name)
		} else {
			solids = append(solids, name)
		}
	}

	main := names[0]
	extras := names[1:]

	quantified := make([]common.Ingredient, 0, len(names))
	for _, name := range names {
		quantified = append(quantified, common.Ingredient{
			Name:     name,
			Quantity: taxonomy.DefaultQuantity(name),
		})
	}

	totalTime := taxonomy.CookTime(main, 10)
	for _, extra := range extras {
		totalTime += taxonomy.CookTime(extra, 5)
	}

	steps := buildSteps(quantified, liquids, solids, diet)

	equipment := []string{"skillet", "knife", "cutting board"}
	for _, name := range names {
		if taxonomy.IsBoilStarch(name) {
			equipment = append(equipment, "pot")
			break
		}
	}

	difficulty := "easy"
	if len(extras) > 1 {
		difficulty = "medium"
	}

	return Recipe{
		Title:            dynamicTitle(main, extras),
		Ingredients:      quantified,
		Steps:            steps,
		Nutrition:        nutrition.Estimate(quantified),
		CookingTime:      totalTime,
		Difficulty:       difficulty,
		Equipment:        equipment,
		Servings:         2,
		Tips:             "Adjust cooking times based on your stove!",
		InputIngredients: names,
	}
}

// noIngredientsRecipe is the sanctioned zero-everything placeholder. The
// sentinel ingredient keeps the never-empty ingredient invariant.
func noIngredientsRecipe() Recipe {
	return Recipe{
		Title:       "No Ingredients",
		Ingredients: []common.Ingredient{{Name: "unknown grub", Quantity: "1 unit"}},
		Steps:       []string{"Please enter ingredients to generate a recipe!"},
		Nutrition:   common.Nutrition{},
		CookingTime: 0,
		Difficulty:  "N/A",
		Servings:    0,
		Tips:        "Add ingredients to start cooking!",
	}
}

func dynamicTitle(main string, extras []string) string {
	title := capitalize(main) + " "
	if len(extras) > 0 {
		capped := make([]string, len(extras))
		for i, extra := range extras {
			capped[i] = capitalize(extra)
		}
		title += strings.Join(capped, " and ") + " "
	}
	return title + "Delight"
}

// buildSteps emits the fixed structural order: prep solids, measure liquids,
// heat fat, cook main, cook each extra, season, serve.
func buildSteps(quantified []common.Ingredient, liquids, solids []string, diet string) []string {
	var steps []string

	if len(solids) > 0 {
		steps = append(steps, fmt.Sprintf(
			"Prep: Chop %s into bite-sized pieces, mind yer fingers!",
			strings.Join(solids, ", "),
		))
	}
	if len(liquids) > 0 {
		measured := make([]string, len(liquids))
		for i, name := range liquids {
			measured[i] = "1/2 cup " + name
		}
		steps = append(steps, fmt.Sprintf(
			"Measure out %s, don't drink it yet!",
			strings.Join(measured, ", "),
		))
	}

	oil := "olive oil"
	if diet == "vegan" {
		oil = "coconut oil"
	}
	steps = append(steps, fmt.Sprintf("Heat 2 tbsp %s in a skillet over medium-high heat.", oil))

	main := quantified[0]
	if taxonomy.IsBoilStarch(main.Name) {
		steps = append(steps, fmt.Sprintf(
			"Cook %s %s separately: boil in salted water for %d minutes until tender, then drain.",
			main.Quantity, main.Name, taxonomy.CookTime(main.Name, 20),
		))
	} else {
		steps = append(steps, fmt.Sprintf(
			"Add %s %s to the skillet and sauté for %d minutes until cooked through.",
			main.Quantity, main.Name, taxonomy.CookTime(main.Name, 10),
		))
	}

	for _, extra := range quantified[1:] {
		switch {
		case taxonomy.IsBoilStarch(extra.Name):
			steps = append(steps, fmt.Sprintf(
				"Cook %s %s separately: boil in salted water for %d minutes until tender, then drain.",
				extra.Quantity, extra.Name, taxonomy.CookTime(extra.Name, 20),
			))
		case taxonomy.IsLiquid(extra.Name):
			steps = append(steps, fmt.Sprintf(
				"Pour in %s %s and simmer for %d minutes to blend flavors.",
				extra.Quantity, extra.Name, taxonomy.CookTime(extra.Name, 5),
			))
		default:
			steps = append(steps, fmt.Sprintf(
				"Add %s %s and cook for %d minutes until tender.",
				extra.Quantity, extra.Name, taxonomy.CookTime(extra.Name, 5),
			))
		}
	}

	steps = append(steps,
		"Season with 1 tsp salt, 1 tsp pepper, and a pinch of paprika, give it some sass!",
		"Serve hot with cornbread or a side salad. Yeehaw!",
	)
	return steps
}

// normalizeNames lowercases and trims, dropping empties but keeping order,
// duplicates and unknown names.
func normalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
