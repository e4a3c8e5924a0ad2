// Package nutrition estimates recipe nutrition from quantity strings and the
// per-100g taxonomy tables, optionally through a bounded worker pool with a
// hard timeout and a remote lookup service in front of the local tables.
package nutrition

import (
	"strconv"
	"strings"
)

// Grams per recognized unit. Quantities without a recognized unit count as
// 100g per unit.
const (
	gramsPerPound      = 453.6
	gramsPerTablespoon = 15
	gramsPerCup        = 240
	gramsPerUnit       = 100
)

// QuantityGrams converts a quantity string like "1/2 cup" or "1 lb" to
// grams. Unparsable amounts default to 1.0 unit; this never fails.
func QuantityGrams(quantity string) float64 {
	fields := strings.Fields(strings.TrimSpace(quantity))

	amount := 1.0
	unit := ""
	if len(fields) > 0 {
		amount = parseAmount(fields[0])
	}
	if len(fields) > 1 {
		unit = strings.ToLower(fields[1])
	}

	switch unit {
	case "lb":
		return amount * gramsPerPound
	case "tbsp":
		return amount * gramsPerTablespoon
	case "cup":
		return amount * gramsPerCup
	default:
		return amount * gramsPerUnit
	}
}

// parseAmount reads a decimal or a bare fraction like "1/2", defaulting to
// 1.0 for anything else.
func parseAmount(token string) float64 {
	if num, denom, ok := strings.Cut(token, "/"); ok {
		n, errN := strconv.ParseFloat(num, 64)
		d, errD := strconv.ParseFloat(denom, 64)
		if errN != nil || errD != nil || d == 0 {
			return 1.0
		}
		return n / d
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 1.0
	}
	return v
}
