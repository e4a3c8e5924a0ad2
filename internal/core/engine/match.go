package engine

import (
	"sort"
	"strings"

	"chucklechow/internal/core/catalog"
)

// FindExact returns the first catalog record whose ingredient set is a
// superset of the requested set, scanning in stored catalog order. Returns
// nil when requested is empty or nothing qualifies.
func FindExact(requested []string, records []catalog.Record) *catalog.Record {
	names := uniqueNames(requested)
	if len(names) == 0 {
		return nil
	}

	for i := range records {
		if containsAll(records[i].Ingredients, names) {
			return &records[i]
		}
	}
	return nil
}

// containsAll reports whether every requested name appears in the record's
// ingredient list, case-insensitively.
func containsAll(recordIngredients []string, requested []string) bool {
	set := make(map[string]struct{}, len(recordIngredients))
	for _, name := range recordIngredients {
		set[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}
	for _, name := range requested {
		if _, ok := set[name]; !ok {
			return false
		}
	}
	return true
}

// Ranked pairs a catalog record with its similarity score.
type Ranked struct {
	Record catalog.Record
	Score  float64
}

// Rank scores every record against the request and sorts descending. The
// sort is stable so ties keep catalog order, and malformed records stay in
// the result with a zero score so positions line up for callers.
func Rank(requested []string, records []catalog.Record) []Ranked {
	ranked := make([]Ranked, len(records))
	for i, rec := range records {
		ranked[i] = Ranked{Record: rec, Score: ScoreRecord(requested, rec)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
