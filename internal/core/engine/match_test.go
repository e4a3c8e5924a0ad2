package engine

import (
	"testing"

	"chucklechow/internal/core/catalog"

	"github.com/stretchr/testify/assert"
)

func testRecords() []catalog.Record {
	return []catalog.Record{
		{ID: 1, Title: "Drunken Beef Skillet", Ingredients: []string{"ground beef", "beer", "onion", "cheese"}},
		{ID: 2, Title: "Chicken and Rice", Ingredients: []string{"chicken", "rice", "lemon", "butter"}},
		{ID: 3, Title: "Veggie Mix", Ingredients: []string{"broccoli", "carrot", "onion"}},
	}
}

func TestFindExact(t *testing.T) {
	records := testRecords()

	rec := FindExact([]string{"chicken", "rice"}, records)
	assert.NotNil(t, rec)
	assert.Equal(t, int64(2), rec.ID)

	// Case and whitespace insensitive.
	rec = FindExact([]string{" Chicken ", "RICE"}, records)
	assert.NotNil(t, rec)
	assert.Equal(t, int64(2), rec.ID)
}

func TestFindExactRequiresSuperset(t *testing.T) {
	records := testRecords()

	// One requested ingredient missing from every record.
	assert.Nil(t, FindExact([]string{"chicken", "moonshine"}, records))
}

func TestFindExactEmptyRequest(t *testing.T) {
	assert.Nil(t, FindExact(nil, testRecords()))
	assert.Nil(t, FindExact([]string{"", "  "}, testRecords()))
}

func TestFindExactFirstWins(t *testing.T) {
	records := []catalog.Record{
		{ID: 10, Title: "First", Ingredients: []string{"onion", "beer"}},
		{ID: 11, Title: "Second", Ingredients: []string{"onion", "beer", "cheese"}},
	}
	rec := FindExact([]string{"onion"}, records)
	assert.NotNil(t, rec)
	assert.Equal(t, int64(10), rec.ID)
}

func TestRank(t *testing.T) {
	records := testRecords()

	ranked := Rank([]string{"chicken", "rice"}, records)
	assert.Len(t, ranked, len(records))
	assert.Equal(t, int64(2), ranked[0].Record.ID)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRankKeepsMalformedRecords(t *testing.T) {
	records := append(testRecords(), catalog.Record{Title: "Broken"})

	ranked := Rank([]string{"chicken"}, records)
	assert.Len(t, ranked, len(records))
	assert.Equal(t, 0.0, ranked[len(ranked)-1].Score)
}

func TestRankStableOnTies(t *testing.T) {
	records := []catalog.Record{
		{ID: 1, Title: "A", Ingredients: []string{"okra"}},
		{ID: 2, Title: "B", Ingredients: []string{"okra"}},
	}
	ranked := Rank([]string{"okra"}, records)
	assert.Equal(t, int64(1), ranked[0].Record.ID)
	assert.Equal(t, int64(2), ranked[1].Record.ID)
}
