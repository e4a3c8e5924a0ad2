package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantityGrams(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		want     float64
	}{
		{"pound", "1 lb", 453.6},
		{"two pounds", "2 lb", 907.2},
		{"half cup", "1/2 cup", 120},
		{"full cup", "1 cup", 240},
		{"tablespoons", "2 tbsp", 30},
		{"unitless count", "2 medium", 200},
		{"bare number", "3", 300},
		{"unparsable", "a dash", 100},
		{"empty", "", 100},
		{"decimal", "1.5 lb", 680.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, QuantityGrams(tt.quantity), 0.01)
		})
	}
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 0.5, parseAmount("1/2"))
	assert.Equal(t, 1.5, parseAmount("1.5"))
	assert.Equal(t, 1.0, parseAmount("garbage"))
	assert.Equal(t, 1.0, parseAmount("1/0"))
}
