package common

import (
	"fmt"
	"strings"
)

// Ingredient is an ingredient line in a rendered recipe.
type Ingredient struct {
	Name        string `json:"name"`
	Quantity    string `json:"quantity"`
	Preparation string `json:"preparation,omitempty"`
}

// String renders an ingredient the way it appears in step and share text,
// e.g. "1 lb chicken, cubed".
func (i Ingredient) String() string {
	s := i.Name
	if i.Quantity != "" {
		s = i.Quantity + " " + s
	}
	if i.Preparation != "" {
		s += ", " + i.Preparation
	}
	return s
}

// Nutrition holds estimated totals for a whole recipe.
type Nutrition struct {
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Fat         float64 `json:"fat"`
	Carbs       float64 `json:"carbs"`
	ChaosFactor int     `json:"chaos_factor,omitempty"`
}

// Add accumulates another nutrition value into n.
func (n *Nutrition) Add(other Nutrition) {
	n.Calories += other.Calories
	n.Protein += other.Protein
	n.Fat += other.Fat
	n.Carbs += other.Carbs
}

// Scale returns n scaled by factor.
func (n Nutrition) Scale(factor float64) Nutrition {
	return Nutrition{
		Calories: n.Calories * factor,
		Protein:  n.Protein * factor,
		Fat:      n.Fat * factor,
		Carbs:    n.Carbs * factor,
	}
}

// FormatIngredients renders an ingredient list as a comma-separated line.
func FormatIngredients(ingredients []Ingredient) string {
	parts := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		parts = append(parts, ing.String())
	}
	return strings.Join(parts, ", ")
}

// Headline renders the share-text nutrition line.
func (n Nutrition) Headline() string {
	return fmt.Sprintf("Calories: %.0f (Chaos: %d/10)", n.Calories, n.ChaosFactor)
}
