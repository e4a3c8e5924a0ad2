// Package catalog owns the read-only set of predefined recipes: the record
// type, the provider contract and an atomically swappable snapshot store.
package catalog

import (
	"context"

	"chucklechow/internal/pkg/common"
)

// Record is a predefined recipe as supplied by the catalog source. Records
// are read-only once loaded; the engine only holds transient references
// during a single request.
type Record struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Ingredients []string         `json:"ingredients"`
	Steps       []string         `json:"steps"`
	Nutrition   common.Nutrition `json:"nutrition"`
	CookingTime int              `json:"cooking_time"`
	Difficulty  string           `json:"difficulty"`
	Equipment   []string         `json:"equipment"`
	Servings    int              `json:"servings"`
	Tips        string           `json:"tips"`

	// Untranslated source variants. Internal only; the enrichment pass never
	// copies these into a response.
	TitleES string   `json:"-"`
	StepsES []string `json:"-"`
}

// Valid reports whether a record is well-formed enough to score. Malformed
// records still occupy their slot in rankings so indexes stay stable.
func (r Record) Valid() bool {
	return r.Title != "" && len(r.Ingredients) > 0
}

// Provider lists the catalog records from an external source.
type Provider interface {
	ListRecipes(ctx context.Context) ([]Record, error)
}
