// Package models holds the finance tracker's data types: monthly records,
// ordered category breakdowns, the declared schema and the flat table
// projection shared by statistics and export.
package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a monetary amount. Surrounding whitespace is ignored.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", raw, err)
	}
	return d, nil
}

// FormatAmount renders an amount the way summaries display it, e.g. "$12.50".
func FormatAmount(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Float64s converts amounts for numeric libraries that work on float64.
func Float64s(values []decimal.Decimal) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.InexactFloat64()
	}
	return out
}

// Sum adds up values.
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
