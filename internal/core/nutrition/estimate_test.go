package nutrition

import (
	"testing"

	"chucklechow/internal/pkg/common"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	items := []common.Ingredient{
		{Name: "chicken", Quantity: "1 lb"},
	}
	n := Estimate(items)

	// 453.6g of chicken at 165 kcal per 100g.
	assert.InDelta(t, 4.536*165, n.Calories, 0.1)
	assert.InDelta(t, 4.536*31, n.Protein, 0.1)
}

func TestEstimateUnknownIngredient(t *testing.T) {
	items := []common.Ingredient{
		{Name: "mystery goop", Quantity: "1 cup"},
	}
	n := Estimate(items)
	assert.Positive(t, n.Calories)
}

func TestEstimateEmpty(t *testing.T) {
	n := Estimate(nil)
	assert.Zero(t, n.Calories)
}

func TestEstimateAccumulates(t *testing.T) {
	one := Estimate([]common.Ingredient{{Name: "chicken", Quantity: "1 lb"}})
	two := Estimate([]common.Ingredient{
		{Name: "chicken", Quantity: "1 lb"},
		{Name: "rice", Quantity: "1 cup"},
	})
	assert.Greater(t, two.Calories, one.Calories)
}
