package engine

import (
	"strings"

	"chucklechow/internal/core/catalog"
	"chucklechow/internal/core/taxonomy"

	"github.com/agnivade/levenshtein"
)

// pairingBonus is the flat score boost when a requested ingredient has a
// known pairing present in the record.
const pairingBonus = 0.2

// Similarity returns a case-insensitive edit-distance ratio between two
// strings on a 0-1 scale.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}

	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// ScoreIngredient returns the best similarity between a requested ingredient
// and any ingredient in the catalog set, 0 for an empty set.
func ScoreIngredient(requested string, catalogIngredients []string) float64 {
	best := 0.0
	for _, candidate := range catalogIngredients {
		if s := Similarity(requested, candidate); s > best {
			best = s
		}
	}
	return best
}

// ScoreRecord scores a catalog record against the requested ingredients: the
// sum of per-ingredient best matches, each plus a flat bonus when any known
// pairing of that ingredient appears in the record. The sum is deliberately
// unnormalized so records covering more requested ingredients outrank
// records with a high average over few.
func ScoreRecord(requested []string, rec catalog.Record) float64 {
	if !rec.Valid() {
		return 0
	}

	recordSet := make(map[string]struct{}, len(rec.Ingredients))
	for _, name := range rec.Ingredients {
		recordSet[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}

	score := 0.0
	for _, name := range uniqueNames(requested) {
		score += ScoreIngredient(name, rec.Ingredients)
		for _, paired := range taxonomy.Pairings(name) {
			if _, ok := recordSet[paired]; ok {
				score += pairingBonus
				break
			}
		}
	}
	return score
}

// uniqueNames lowercases, trims and dedupes while preserving order.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
