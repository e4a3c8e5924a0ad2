package engine

import (
	"fmt"
	"strings"

	"chucklechow/internal/core/taxonomy"
	"chucklechow/internal/pkg/common"

	"go.uber.org/zap"
)

// Enricher layers randomized presentation over any recipe-shaped input:
// title, styled steps, equipment, the chaos tip and the share summary.
type Enricher struct {
	rng         Rand
	chaosFactor int
}

// NewEnricher creates an enricher drawing from the given random source.
func NewEnricher(rng Rand, chaosFactor int) *Enricher {
	return &Enricher{rng: rng, chaosFactor: chaosFactor}
}

// Enrich builds the styled recipe. Any panic inside is caught and the fixed
// error recipe is returned instead; the caller always gets a well-formed
// result.
func (e *Enricher) Enrich(in Recipe) (out Recipe) {
	defer func() {
		if r := recover(); r != nil {
			common.LogError("enrichment pass panicked, returning error recipe",
				zap.Any("panic", r),
				zap.String("title", in.Title),
			)
			out = ErrorRecipe()
		}
	}()

	names := in.InputIngredients
	if len(names) == 0 {
		for _, ing := range in.Ingredients {
			names = append(names, ing.Name)
		}
	}

	method := e.chooseMethod(names)
	prefix := pick(e.rng, funnyPrefixes)
	suffix := pick(e.rng, funnySuffixes)
	extras := sample(e.rng, spicesAndExtras, 1+e.rng.Intn(2))
	extraText := strings.Join(extras, ", ")
	if extraText == "" {
		extraText = "a pinch of salt"
	}

	list := e.measureIngredients(names)

	equipment := sample(e.rng, equipmentOptions, 3)
	primary := equipment[0]
	chaosGear := pick(e.rng, equipmentQuirky)
	chaosTip := pick(e.rng, chaosTips)
	insult := pick(e.rng, insults)
	heat, duration := methodProfile(method)

	steps := e.buildStyledSteps(in.Steps, list, method, primary, heat, duration, extraText, insult)
	steps = append(steps, "Chaos Tip: "+chaosTip)

	nut := overlayNutrition(names)
	nut.ChaosFactor = e.chaosFactor

	out = Recipe{
		ID:               in.ID,
		Title:            e.buildTitle(prefix, method, suffix, list),
		Ingredients:      list,
		Steps:            steps,
		Nutrition:        nut,
		CookingTime:      in.CookingTime,
		Difficulty:       in.Difficulty,
		Equipment:        equipment,
		ChaosGear:        chaosGear,
		Servings:         in.Servings,
		Tips:             in.Tips,
		InputIngredients: names,
	}
	out.ShareText = shareText(out)
	return out
}

// chooseMethod samples the method vocabulary, letting ingredients with known
// method preferences boost the pool before the final draw.
func (e *Enricher) chooseMethod(names []string) string {
	method := pick(e.rng, cookingMethods)
	for _, name := range names {
		prefs := taxonomy.MethodPreferences(name)
		if len(prefs) == 0 {
			continue
		}
		pool := make([]string, 0, len(prefs)+1)
		pool = append(pool, prefs...)
		pool = append(pool, method)
		method = pick(e.rng, pool)
	}
	return method
}

// measureIngredients assigns category-based quantities and preparations,
// substituting the sentinel entry when nothing usable came in. A practical
// oil line is always appended.
func (e *Enricher) measureIngredients(names []string) []common.Ingredient {
	list := make([]common.Ingredient, 0, len(names)+1)
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		quantity, preparation := "1 unit", ""
		if cat := taxonomy.Classify(name); cat != taxonomy.CategoryUnknown {
			quantity, preparation = taxonomy.Measurement(cat)
		}
		list = append(list, common.Ingredient{
			Name:        name,
			Quantity:    quantity,
			Preparation: preparation,
		})
	}
	if len(list) == 0 {
		list = append(list, common.Ingredient{Name: "unknown grub", Quantity: "1 unit"})
	}
	list = append(list, common.Ingredient{Name: "oil", Quantity: "1 tbsp", Preparation: "for cooking"})
	return list
}

func (e *Enricher) buildTitle(prefix, method, suffix string, list []common.Ingredient) string {
	var items []string
	for _, ing := range list {
		if strings.Contains(ing.Name, "oil") {
			continue
		}
		items = append(items, capitalize(ing.Name))
		if len(items) == 2 {
			break
		}
	}
	if len(items) == 0 {
		items = []string{"Mystery"}
	}
	return fmt.Sprintf("%s %s %s %s", prefix, method, strings.Join(items, " and "), suffix)
}

// buildStyledSteps adapts an existing step list of at least three entries in
// place, or fills one of the fixed templates.
func (e *Enricher) buildStyledSteps(existing []string, list []common.Ingredient, method, equipment, heat, duration, extraText, insult string) []string {
	if len(existing) >= 3 {
		return []string{
			"Prep: " + strings.Replace(existing[0], "Cook", "Chop or prep", 1) + ".",
			fmt.Sprintf("%s in %s over %s for %s, stirring occasionally.", method, equipment, heat, duration),
			fmt.Sprintf("Serve hot with %s and a side of cornbread or salad. %s", extraText, insult),
		}
	}

	headline := list
	if len(headline) > 2 {
		headline = headline[:2]
	}
	parts := make([]string, len(headline))
	for i, ing := range headline {
		parts[i] = ing.String()
	}

	ctx := stepContext{
		Ingredients: strings.Join(parts, " and "),
		Method:      strings.ToLower(method),
		Equipment:   equipment,
		Heat:        heat,
		Time:        duration,
		Extra:       extraText,
	}
	tpl := stepTemplates[e.rng.Intn(len(stepTemplates))]
	return []string{
		ctx.render(tpl[0]),
		ctx.render(tpl[1]),
		ctx.render(tpl[2]) + " " + insult,
	}
}

// Per-category nutrition increments for the final overlay. Meat and seafood
// weigh heaviest, alcohol lightest.
var categoryNutrition = map[taxonomy.Category]common.Nutrition{
	taxonomy.CategoryMeat:      {Calories: 800, Protein: 60, Fat: 40},
	taxonomy.CategorySeafood:   {Calories: 800, Protein: 60, Fat: 40},
	taxonomy.CategoryVegetable: {Calories: 100, Carbs: 20},
	taxonomy.CategoryStarch:    {Calories: 200, Carbs: 40},
	taxonomy.CategoryDairy:     {Calories: 150, Fat: 10},
	taxonomy.CategoryFruit:     {Calories: 80, Carbs: 15},
	taxonomy.CategoryBooze:     {Calories: 100},
}

// minCalories is the display floor; a client never sees a zero-calorie
// enriched recipe.
const minCalories = 100

func overlayNutrition(names []string) common.Nutrition {
	var total common.Nutrition
	for _, name := range names {
		total.Add(categoryNutrition[taxonomy.Classify(name)])
	}
	if total.Calories < minCalories {
		total.Calories = minCalories
	}
	return total
}

// shareText renders the human-readable summary block.
func shareText(r Recipe) string {
	var b strings.Builder
	b.WriteString("Behold my culinary chaos: " + r.Title + "\n")
	b.WriteString("Gear: " + strings.Join(r.Equipment, ", ") + "\n")
	if r.ChaosGear != "" {
		b.WriteString("Chaos Gear: " + r.ChaosGear + "\n")
	}
	b.WriteString("Grub: " + common.FormatIngredients(r.Ingredients) + "\n")
	b.WriteString("Steps:\n" + strings.Join(r.Steps, " ") + "\n")
	b.WriteString(r.Nutrition.Headline())
	return b.String()
}
