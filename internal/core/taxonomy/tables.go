package taxonomy

import "chucklechow/internal/pkg/common"

// categoryMembers lists every known ingredient under its category.
var categoryMembers = map[Category][]string{
	CategoryMeat: {
		"ground beef", "chicken", "pork", "lamb", "bacon", "tofu",
		"pichana", "churrasco", "ribeye steaks",
		"squirrel", "rabbit", "quail", "woodpecker",
	},
	CategoryVegetable: {
		"cauliflower", "carrot", "broccoli", "onion", "garlic", "potato",
		"tomato", "green beans", "okra", "collards",
	},
	CategoryFruit: {
		"apple", "banana", "lemon", "orange", "mango", "avocado",
		"starfruit", "dragon fruit", "carambola",
	},
	CategorySeafood: {
		"salmon", "shrimp", "cod", "tuna", "yellowtail snapper", "grouper",
		"red snapper", "oysters", "lobster", "conch", "lionfish",
		"catfish", "bass", "crappie",
	},
	CategoryDairy: {
		"cheese", "milk", "butter", "yogurt", "eggs", "egg",
	},
	CategoryStarch: {
		"bread", "pasta", "rice", "tortilla",
	},
	CategoryBooze: {
		"beer", "moonshine", "whiskey", "vodka", "tequila",
	},
}

// cookTimes holds per-ingredient cook times in minutes.
var cookTimes = map[string]int{
	"chicken":       10,
	"ground beef":   12,
	"tofu":          8,
	"shrimp":        5,
	"bacon":         6,
	"egg":           3,
	"eggs":          3,
	"rice":          20,
	"potato":        25,
	"onion":         5,
	"garlic":        2,
	"tomato":        3,
	"beer":          5,
	"moonshine":     5,
	"whiskey":       5,
	"vodka":         5,
	"tequila":       5,
	"milk":          5,
	"ribeye steaks": 10,
	"squirrel":      10,
	"rabbit":        10,
	"quail":         8,
	"woodpecker":    10,
	"butter":        2,
	"cheese":        2,
	"yogurt":        2,
}

// nutritionBase holds per-100g nutrition values.
var nutritionBase = map[string]common.Nutrition{
	"chicken":       {Calories: 165, Protein: 31, Fat: 3.6},
	"ground beef":   {Calories: 250, Protein: 26, Fat: 15},
	"tofu":          {Calories: 76, Protein: 8, Fat: 4.8},
	"bacon":         {Calories: 541, Protein: 37, Fat: 42},
	"egg":           {Calories: 68, Protein: 6, Fat: 5},
	"eggs":          {Calories: 68, Protein: 6, Fat: 5},
	"rice":          {Calories: 130, Protein: 2.7, Fat: 0.3},
	"potato":        {Calories: 77, Protein: 2, Fat: 0.1},
	"beer":          {Calories: 43, Protein: 0.5, Fat: 0},
	"ribeye steaks": {Calories: 271, Protein: 25, Fat: 19},
	"squirrel":      {Calories: 170, Protein: 30, Fat: 5},
	"rabbit":        {Calories: 173, Protein: 33, Fat: 3.5},
	"quail":         {Calories: 192, Protein: 25, Fat: 10},
	"woodpecker":    {Calories: 180, Protein: 28, Fat: 7},
	"butter":        {Calories: 717, Protein: 0.9, Fat: 81},
}

// genericNutrition backs unknown ingredients.
var genericNutrition = common.Nutrition{Calories: 50, Protein: 2, Fat: 2}

// ingredientPairs is the directed pairing-affinity table. Only used to bias
// similarity scores.
var ingredientPairs = map[string][]string{
	"ground beef": {"beer", "onion", "cheese"},
	"chicken":     {"lemon", "butter", "rice"},
	"pork":        {"apple", "whiskey", "potato"},
	"salmon":      {"lemon", "butter", "vodka"},
	"moonshine":   {"ground beef", "pork", "chicken"},
	"beer":        {"ground beef", "chicken", "bread"},
}

// methodPreferences biases the enrichment method pool by ingredient.
var methodPreferences = map[string][]string{
	"tequila":     {"Grill"},
	"moonshine":   {"Fry"},
	"beer":        {"Simmer"},
	"ground beef": {"Fry"},
}

// measurements maps a category to the enrichment-pass quantity and
// preparation pair.
var measurements = map[Category][2]string{
	CategoryMeat:      {"1 lb", "cubed"},
	CategoryVegetable: {"2 medium", "diced"},
	CategoryFruit:     {"1 cup", "sliced"},
	CategorySeafood:   {"1 lb", "cleaned"},
	CategoryDairy:     {"2 tbsp", "melted"},
	CategoryStarch:    {"1 cup", "cooked"},
	CategoryBooze:     {"1/2 cup", ""},
}
