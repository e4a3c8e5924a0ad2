package engine

import "strings"

// Fixed vocabularies for the enrichment pass.
var (
	cookingMethods = []string{"Grill", "Fry", "Bake", "Boil", "Sauté", "Roast", "Simmer"}

	equipmentOptions = []string{"skillet", "pot", "grill", "oven", "mixing bowl", "tongs", "spatula", "knife"}
	equipmentQuirky  = []string{"busted spatula", "rusty tongs", "haunted whisk"}

	funnyPrefixes = []string{"Redneck", "Drunk", "Hillbilly", "Bubba's", "Sassy Granny's", "Bootleg", "Yeehaw"}
	funnySuffixes = []string{"Fry", "Hoedown", "Feast", "Supper", "Brawl"}

	spicesAndExtras = []string{"1 tsp salt", "1/2 tsp black pepper", "1 tbsp paprika", "1 tsp garlic powder", "1 tbsp hot sauce", "1 tbsp oil"}

	chaosTips = []string{
		"Spill a splash of beer for extra sizzle!",
		"Holler at it to tenderize!",
		"Bribe the neighbors with a plate if they sniff around!",
	}
	insults = []string{
		"Tastier than roadkill!",
		"Even yer cousin'd eat it!",
		"Good enough for the barn!",
	}
)

// stepContext holds the named values a step template may bind.
type stepContext struct {
	Ingredients string
	Method      string
	Equipment   string
	Heat        string
	Time        string
	Extra       string
}

// stepTemplate is an ordered three-line template. Each line binds named
// slots from a stepContext; rendering is pure substitution.
type stepTemplate [3]string

var stepTemplates = []stepTemplate{
	{
		"Prep: Chop {ingredients} into bite-sized pieces, mind yer fingers!",
		"Cook: {method} in {equipment} over {heat} for {time}, stirrin' like yer wranglin' a hog.",
		"Serve: Plate with {extra}, prouder'n a rooster at dawn.",
	},
	{
		"Start: Mix {ingredients} with {extra} in a {equipment}.",
		"Heat: {method} over {heat} for {time}, flippin' like yer dodgin' a skunk.",
		"Finish: Serve hot with cornbread or salad, holler when it's ready!",
	},
}

// render substitutes every slot in a template line from the context.
func (c stepContext) render(line string) string {
	r := strings.NewReplacer(
		"{ingredients}", c.Ingredients,
		"{method}", c.Method,
		"{equipment}", c.Equipment,
		"{heat}", c.Heat,
		"{time}", c.Time,
		"{extra}", c.Extra,
	)
	return r.Replace(line)
}

// methodProfile maps a cooking method to its heat and time wording.
func methodProfile(method string) (heat, duration string) {
	switch method {
	case "Grill", "Fry", "Sauté":
		return "medium-high heat", "6-10 minutes"
	case "Bake":
		return "350°F", "15-20 minutes"
	case "Boil":
		return "boiling water", "10-15 minutes"
	default:
		return "medium heat", "8-12 minutes"
	}
}
