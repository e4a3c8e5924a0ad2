package engine

import (
	"context"
	"fmt"

	"chucklechow/internal/core/catalog"
	"chucklechow/internal/core/nutrition"
	"chucklechow/internal/core/taxonomy"
	"chucklechow/internal/pkg/common"

	"go.uber.org/zap"
)

// Service is the recipe synthesis engine. It matches requests against the
// catalog snapshot, falls back to dynamic generation and always runs the
// enrichment pass last. Every path returns a structurally valid recipe;
// nothing escapes as an error.
type Service struct {
	store    *catalog.Store
	pool     *nutrition.Pool
	enricher *Enricher
	rng      Rand
	topK     int
}

// NewService wires the engine. pool may be nil to estimate nutrition inline.
func NewService(store *catalog.Store, pool *nutrition.Pool, rng Rand, topK, chaosFactor int) *Service {
	if rng == nil {
		rng = NewLockedRand()
	}
	if topK <= 0 {
		topK = 5
	}
	return &Service{
		store:    store,
		pool:     pool,
		enricher: NewEnricher(rng, chaosFactor),
		rng:      rng,
		topK:     topK,
	}
}

// Generate runs the full synthesis flow for one request. Malformed input
// degrades to empty defaults rather than failing.
func (s *Service) Generate(ctx context.Context, ingredients []string, preferences map[string]string) *Recipe {
	names := normalizeNames(ingredients)
	if preferences == nil {
		preferences = map[string]string{}
	}

	if preferences["isRandom"] == "true" {
		return s.randomRecipe(ctx, names, preferences)
	}

	if len(names) == 0 {
		// The one sanctioned zero-calorie response; nothing to style.
		recipe := Generate(nil, preferences)
		return &recipe
	}

	if rec := FindExact(names, s.snapshot()); rec != nil {
		common.LogDebug("matched predefined recipe",
			zap.Int64("recipe_id", rec.ID),
			zap.String("title", rec.Title),
		)
		matched := FromRecord(*rec)
		matched.InputIngredients = names
		return s.finish(ctx, matched, preferences)
	}

	return s.dynamic(ctx, names, preferences)
}

// randomRecipe ranks the catalog against the request, picks uniformly from
// the top K, and falls back to a minimal built-in random recipe when the
// catalog has nothing valid.
func (s *Service) randomRecipe(ctx context.Context, names []string, preferences map[string]string) *Recipe {
	records := s.snapshot()

	hasValid := false
	for _, rec := range records {
		if rec.Valid() {
			hasValid = true
			break
		}
	}

	if !hasValid {
		common.LogWarn("catalog empty or invalid, generating fallback random recipe",
			zap.Int("records", len(records)),
		)
		return s.finish(ctx, s.fallbackRandom(), preferences)
	}

	ranked := Rank(names, records)
	top := ranked
	if len(top) > s.topK {
		top = top[:s.topK]
	}
	choice := top[s.rng.Intn(len(top))]
	common.LogDebug("selected random recipe",
		zap.Int64("recipe_id", choice.Record.ID),
		zap.Float64("score", choice.Score),
	)

	recipe := FromRecord(choice.Record)
	recipe.InputIngredients = names
	return s.finish(ctx, recipe, preferences)
}

// fallbackRandom builds a minimal recipe from three randomly drawn known
// ingredients when the catalog cannot serve.
func (s *Service) fallbackRandom() Recipe {
	var known []string
	for _, names := range taxonomy.Categories() {
		known = append(known, names...)
	}
	chosen := sample(s.rng, known, 3)

	ingredients := make([]common.Ingredient, len(chosen))
	for i, name := range chosen {
		ingredients[i] = common.Ingredient{Name: name, Quantity: taxonomy.DefaultQuantity(name)}
	}

	return Recipe{
		Title:       "Random Chaos Dish",
		Ingredients: ingredients,
		Steps: []string{
			fmt.Sprintf("Prep: Chop %s and %s.", chosen[0], chosen[1]),
			"Cook: Throw everything together and keep it moving.",
			"Serve: Enjoy with a side of chaos!",
		},
		Nutrition:        common.Nutrition{Calories: 500},
		CookingTime:      30,
		Difficulty:       "medium",
		Equipment:        []string{"skillet"},
		Servings:         2,
		Tips:             "Season to taste for best results!",
		InputIngredients: chosen,
	}
}

// dynamic generates a recipe from scratch, pushing nutrition through the
// worker pool when one is configured. Pool failure substitutes a placeholder
// value; nutrition never fails the request.
func (s *Service) dynamic(ctx context.Context, names []string, preferences map[string]string) *Recipe {
	recipe := Generate(names, preferences)

	if s.pool != nil {
		n, err := s.pool.Estimate(ctx, recipe.Ingredients)
		if err != nil {
			common.LogWarn("nutrition estimation failed, substituting placeholder",
				zap.Error(err),
				zap.Strings("ingredients", names),
			)
			n = s.placeholderNutrition()
		}
		recipe.Nutrition = n
	}

	return s.finish(ctx, recipe, preferences)
}

// placeholderNutrition draws a safe random-range value for when estimation
// is unavailable.
func (s *Service) placeholderNutrition() common.Nutrition {
	return common.Nutrition{
		Calories: float64(300 + s.rng.Intn(400)),
		Protein:  float64(15 + s.rng.Intn(30)),
		Fat:      float64(10 + s.rng.Intn(25)),
	}
}

// finish runs the enrichment pass and applies style/category title
// decorations from the preference bag.
func (s *Service) finish(_ context.Context, recipe Recipe, preferences map[string]string) *Recipe {
	out := s.enricher.Enrich(recipe)
	if style := preferences["style"]; style != "" {
		out.Title = fmt.Sprintf("%s (%s)", out.Title, style)
	}
	if category := preferences["category"]; category != "" {
		out.Title = fmt.Sprintf("%s - %s", out.Title, category)
	}
	return &out
}

func (s *Service) snapshot() []catalog.Record {
	if s.store == nil {
		return nil
	}
	return s.store.Snapshot()
}
