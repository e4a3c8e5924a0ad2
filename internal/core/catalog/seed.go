package catalog

import (
	"context"

	"chucklechow/internal/pkg/common"
)

// SeedProvider serves the built-in catalog. It backs the service when no
// database DSN is configured and is the fallback when the database is down.
type SeedProvider struct{}

// NewSeedProvider creates a provider over the built-in records.
func NewSeedProvider() *SeedProvider {
	return &SeedProvider{}
}

// ListRecipes returns the built-in records.
func (p *SeedProvider) ListRecipes(ctx context.Context) ([]Record, error) {
	out := make([]Record, len(seedRecords))
	copy(out, seedRecords)
	return out, nil
}

var seedRecords = []Record{
	{
		ID:          1,
		Title:       "Drunken Beef Skillet",
		TitleES:     "Sartén de Res Borracha",
		Ingredients: []string{"ground beef", "beer", "onion", "cheese"},
		Steps: []string{
			"Cook the ground beef and onion in a skillet until browned.",
			"Pour in the beer and simmer until it cooks down.",
			"Top with cheese and let it melt before serving.",
		},
		StepsES: []string{
			"Cocina la carne molida y la cebolla en una sartén hasta dorar.",
			"Agrega la cerveza y cocina a fuego lento hasta reducir.",
			"Cubre con queso y deja derretir antes de servir.",
		},
		Nutrition:   common.Nutrition{Calories: 650, Protein: 45, Fat: 38},
		CookingTime: 25,
		Difficulty:  "easy",
		Equipment:   []string{"skillet", "spatula"},
		Servings:    2,
		Tips:        "Cheap beer works better than the fancy stuff.",
	},
	{
		ID:          2,
		Title:       "Bubba's Chicken and Rice",
		TitleES:     "Pollo con Arroz de Bubba",
		Ingredients: []string{"chicken", "rice", "lemon", "butter"},
		Steps: []string{
			"Cook the rice in salted water until tender, then drain.",
			"Cook the chicken in butter until golden on both sides.",
			"Squeeze the lemon over everything and serve on the rice.",
		},
		StepsES: []string{
			"Cocina el arroz en agua con sal hasta que esté tierno y escurre.",
			"Cocina el pollo en mantequilla hasta dorar por ambos lados.",
			"Exprime el limón encima y sirve sobre el arroz.",
		},
		Nutrition:   common.Nutrition{Calories: 520, Protein: 42, Fat: 18},
		CookingTime: 35,
		Difficulty:  "easy",
		Equipment:   []string{"skillet", "pot"},
		Servings:    2,
		Tips:        "Save the lemon rind for yer sweet tea.",
	},
	{
		ID:          3,
		Title:       "Hillbilly Pork Supper",
		Ingredients: []string{"pork", "apple", "whiskey", "potato"},
		Steps: []string{
			"Cook the potatoes in boiling water until fork-tender.",
			"Cook the pork with the apple slices until caramelized.",
			"Deglaze with whiskey, stand back, and serve it all together.",
		},
		Nutrition:   common.Nutrition{Calories: 710, Protein: 38, Fat: 32},
		CookingTime: 40,
		Difficulty:  "medium",
		Equipment:   []string{"skillet", "pot", "tongs"},
		Servings:    2,
		Tips:        "Keep the whiskey away from the flame unless you want a show.",
	},
	{
		ID:          4,
		Title:       "Swamp Salmon Surprise",
		Ingredients: []string{"salmon", "lemon", "butter", "vodka"},
		Steps: []string{
			"Cook the salmon skin-side down in butter.",
			"Splash in the vodka and lemon juice and baste the fish.",
			"Serve with whatever greens you got.",
		},
		Nutrition:   common.Nutrition{Calories: 480, Protein: 40, Fat: 28},
		CookingTime: 15,
		Difficulty:  "medium",
		Equipment:   []string{"skillet", "spatula"},
		Servings:    2,
		Tips:        "Don't flip it more than once.",
	},
	{
		ID:          5,
		Title:       "Moonshine Squirrel Stew",
		Ingredients: []string{"squirrel", "moonshine", "onion", "potato", "carrot"},
		Steps: []string{
			"Cook the squirrel pieces until browned all over.",
			"Add onion, carrot, and potato and cover with water.",
			"Add a splash of moonshine and stew until everything is tender.",
		},
		Nutrition:   common.Nutrition{Calories: 590, Protein: 48, Fat: 16},
		CookingTime: 90,
		Difficulty:  "hard",
		Equipment:   []string{"pot", "knife", "cutting board"},
		Servings:    4,
		Tips:        "Low and slow, like a Sunday afternoon.",
	},
}
