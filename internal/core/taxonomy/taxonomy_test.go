package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, CategoryMeat, Classify("chicken"))
	assert.Equal(t, CategoryMeat, Classify("  Chicken  "))
	assert.Equal(t, CategoryVegetable, Classify("potato"))
	assert.Equal(t, CategoryStarch, Classify("rice"))
	assert.Equal(t, CategoryBooze, Classify("moonshine"))
	assert.Equal(t, CategoryUnknown, Classify("unicorn meat"))
	assert.Equal(t, CategoryUnknown, Classify(""))
}

func TestClassifyIdempotent(t *testing.T) {
	first := Classify("BEER")
	second := Classify("beer")
	assert.Equal(t, first, second)
	assert.Equal(t, CategoryBooze, first)
}

func TestIsLiquid(t *testing.T) {
	assert.True(t, IsLiquid("beer"))
	assert.True(t, IsLiquid("whiskey"))
	assert.True(t, IsLiquid("milk"))
	assert.False(t, IsLiquid("cheese"))
	assert.False(t, IsLiquid("chicken"))
}

func TestDefaultQuantity(t *testing.T) {
	assert.Equal(t, "1 lb", DefaultQuantity("chicken"))
	assert.Equal(t, "1/2 cup", DefaultQuantity("beer"))
	assert.Equal(t, "2 tbsp", DefaultQuantity("butter"))
	assert.Equal(t, "1 cup", DefaultQuantity("rice"))
	assert.Equal(t, "1 cup", DefaultQuantity("something weird"))

	// Milk is dairy but measures as a liquid.
	assert.Equal(t, "1/2 cup", DefaultQuantity("milk"))
}

func TestIsBoilStarch(t *testing.T) {
	assert.True(t, IsBoilStarch("rice"))
	assert.True(t, IsBoilStarch("potato"))
	assert.False(t, IsBoilStarch("pasta"))
	assert.False(t, IsBoilStarch("bread"))
}

func TestCookTime(t *testing.T) {
	assert.Equal(t, 10, CookTime("chicken", 99))
	assert.Equal(t, 20, CookTime("rice", 99))
	assert.Equal(t, 99, CookTime("unicorn meat", 99))
}

func TestNutritionBase(t *testing.T) {
	chicken := NutritionBase("chicken")
	assert.Equal(t, 165.0, chicken.Calories)
	assert.Equal(t, 31.0, chicken.Protein)

	unknown := NutritionBase("mystery goop")
	assert.Equal(t, genericNutrition, unknown)
	assert.Positive(t, unknown.Calories)
}

func TestPairings(t *testing.T) {
	assert.Contains(t, Pairings("ground beef"), "beer")
	assert.Contains(t, Pairings("chicken"), "lemon")
	assert.Empty(t, Pairings("unicorn meat"))
}

func TestMeasurement(t *testing.T) {
	qty, prep := Measurement(CategoryMeat)
	assert.Equal(t, "1 lb", qty)
	assert.Equal(t, "cubed", prep)

	qty, prep = Measurement(CategoryUnknown)
	assert.Equal(t, "1 unit", qty)
	assert.Empty(t, prep)
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Contains(t, cats, "meat")
	assert.Contains(t, cats, "alcoholic-liquid")
	assert.Contains(t, cats["meat"], "chicken")
	assert.Contains(t, cats["vegetable"], "potato")

	// Groups come back sorted for stable endpoint output.
	meats := cats["meat"]
	for i := 1; i < len(meats); i++ {
		assert.LessOrEqual(t, meats[i-1], meats[i])
	}
}
