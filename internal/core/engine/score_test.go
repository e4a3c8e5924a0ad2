package engine

import (
	"testing"

	"chucklechow/internal/core/catalog"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("chicken", "chicken"))
	assert.Equal(t, 1.0, Similarity("Chicken", "  chicken "))
	assert.Equal(t, 0.0, Similarity("", "chicken"))
	assert.Equal(t, 0.0, Similarity("chicken", ""))

	// Near matches score high, unrelated names low.
	near := Similarity("chickn", "chicken")
	far := Similarity("broccoli", "chicken")
	assert.Greater(t, near, 0.8)
	assert.Greater(t, near, far)

	// Symmetric.
	assert.Equal(t, Similarity("beef", "beer"), Similarity("beer", "beef"))

	// Bounded.
	assert.GreaterOrEqual(t, far, 0.0)
	assert.LessOrEqual(t, near, 1.0)
}

func TestScoreIngredient(t *testing.T) {
	list := []string{"chicken", "rice", "lemon"}
	assert.Equal(t, 1.0, ScoreIngredient("chicken", list))
	assert.Equal(t, 0.0, ScoreIngredient("chicken", nil))

	best := ScoreIngredient("chickn", list)
	assert.Greater(t, best, 0.8)
	assert.Less(t, best, 1.0)
}

func TestScoreRecord(t *testing.T) {
	chickenRice := catalog.Record{
		Title:       "Chicken and Rice",
		Ingredients: []string{"chicken", "rice", "lemon", "butter"},
	}
	veggie := catalog.Record{
		Title:       "Veggie Mix",
		Ingredients: []string{"broccoli", "carrot"},
	}

	requested := []string{"chicken", "rice"}
	assert.Greater(t, ScoreRecord(requested, chickenRice), ScoreRecord(requested, veggie))
}

func TestScoreRecordPairingBonus(t *testing.T) {
	// "chicken" pairs with "lemon"; a record carrying the pairing outranks
	// an otherwise identical one.
	withPairing := catalog.Record{
		Title:       "A",
		Ingredients: []string{"chicken", "lemon"},
	}
	withoutPairing := catalog.Record{
		Title:       "B",
		Ingredients: []string{"chicken", "broccoli"},
	}

	requested := []string{"chicken"}
	diff := ScoreRecord(requested, withPairing) - ScoreRecord(requested, withoutPairing)
	assert.InDelta(t, pairingBonus, diff, 0.001)
}

func TestScoreRecordMalformed(t *testing.T) {
	assert.Equal(t, 0.0, ScoreRecord([]string{"chicken"}, catalog.Record{Title: "No Ingredients"}))
	assert.Equal(t, 0.0, ScoreRecord([]string{"chicken"}, catalog.Record{Ingredients: []string{"chicken"}}))
}

func TestScoreRecordDuplicatesCollapse(t *testing.T) {
	rec := catalog.Record{
		Title:       "Chicken",
		Ingredients: []string{"chicken"},
	}
	once := ScoreRecord([]string{"chicken"}, rec)
	twice := ScoreRecord([]string{"chicken", "chicken"}, rec)
	assert.Equal(t, once, twice)
}

func TestUniqueNames(t *testing.T) {
	got := uniqueNames([]string{" Chicken ", "chicken", "", "Rice"})
	assert.Equal(t, []string{"chicken", "rice"}, got)
}
