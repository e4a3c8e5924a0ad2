package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate([]string{"chicken", "broccoli"}, nil)
	b := Generate([]string{"chicken", "broccoli"}, nil)
	assert.Equal(t, a, b)
}

func TestGenerateBasics(t *testing.T) {
	r := Generate([]string{"chicken", "broccoli", "beer"}, nil)

	assert.Equal(t, "Chicken Broccoli and Beer Delight", r.Title)
	require.Len(t, r.Ingredients, 3)
	assert.Equal(t, "1 lb", r.Ingredients[0].Quantity)
	assert.Equal(t, "1/2 cup", r.Ingredients[2].Quantity)
	assert.Positive(t, r.Nutrition.Calories)
	assert.Equal(t, 2, r.Servings)
	assert.Equal(t, "medium", r.Difficulty)

	// chicken 10 + broccoli fallback 5 + beer 5
	assert.Equal(t, 20, r.CookingTime)
}

func TestGenerateSingleIngredientEasy(t *testing.T) {
	r := Generate([]string{"chicken"}, nil)
	assert.Equal(t, "easy", r.Difficulty)
	assert.Equal(t, "Chicken Delight", r.Title)
}

func TestGenerateEmpty(t *testing.T) {
	r := Generate(nil, nil)

	assert.Equal(t, "No Ingredients", r.Title)
	assert.Zero(t, r.Nutrition.Calories)
	assert.Zero(t, r.CookingTime)
	assert.Zero(t, r.Servings)
	assert.Equal(t, "N/A", r.Difficulty)
	require.NotEmpty(t, r.Ingredients)
	assert.Equal(t, "unknown grub", r.Ingredients[0].Name)

	// Blank-only input collapses to the same placeholder.
	assert.Equal(t, r, Generate([]string{"", "   "}, nil))
}

func TestGenerateLiquidHandling(t *testing.T) {
	r := Generate([]string{"chicken", "beer"}, nil)

	joined := strings.Join(r.Steps, "\n")
	assert.Contains(t, joined, "Measure out 1/2 cup beer, don't drink it yet!")
	assert.Contains(t, joined, "Pour in 1/2 cup beer and simmer")

	// Liquids never show up in the chop step.
	for _, step := range r.Steps {
		if strings.HasPrefix(step, "Prep: Chop") {
			assert.NotContains(t, step, "beer")
		}
	}
}

func TestGenerateBoilStarch(t *testing.T) {
	r := Generate([]string{"chicken", "rice"}, nil)

	joined := strings.Join(r.Steps, "\n")
	assert.Contains(t, joined, "boil in salted water for 20 minutes")
	assert.Contains(t, r.Equipment, "pot")

	// No starch, no pot.
	r = Generate([]string{"chicken", "onion"}, nil)
	assert.NotContains(t, r.Equipment, "pot")
}

func TestGenerateBoilStarchAsMain(t *testing.T) {
	r := Generate([]string{"rice", "chicken"}, nil)

	joined := strings.Join(r.Steps, "\n")
	assert.Contains(t, joined, "Cook 1 cup rice separately")
	assert.NotContains(t, joined, "Add 1 cup rice to the skillet")
}

func TestGenerateVeganOil(t *testing.T) {
	r := Generate([]string{"broccoli"}, map[string]string{"diet": "vegan"})
	assert.Contains(t, strings.Join(r.Steps, "\n"), "coconut oil")

	r = Generate([]string{"broccoli"}, nil)
	assert.Contains(t, strings.Join(r.Steps, "\n"), "olive oil")
}

func TestGenerateStepOrder(t *testing.T) {
	r := Generate([]string{"chicken", "onion", "beer"}, nil)

	require.GreaterOrEqual(t, len(r.Steps), 5)
	assert.True(t, strings.HasPrefix(r.Steps[0], "Prep: Chop"))
	last := r.Steps[len(r.Steps)-1]
	assert.Contains(t, last, "Yeehaw!")
	assert.Contains(t, r.Steps[len(r.Steps)-2], "give it some sass!")
}

func TestGenerateUnknownIngredients(t *testing.T) {
	r := Generate([]string{"unicorn meat"}, nil)
	assert.Equal(t, "Unicorn meat Delight", r.Title)
	assert.Positive(t, r.Nutrition.Calories)
	assert.Equal(t, 10, r.CookingTime)
}
