package report

import (
	"fmt"
	"slices"

	"fjacquet/finance-tracker/internal/models"

	"github.com/montanaflynn/stats"
)

// ColumnStats holds the descriptive statistics of one table column. Mode is
// nil when no value occurs more than once.
type ColumnStats struct {
	Column string   `json:"column"`
	Mean   float64  `json:"mean"`
	Median float64  `json:"median"`
	Mode   *float64 `json:"mode"`
}

// Analyze computes mean, median and mode for every column except Month, in
// column order.
func Analyze(table *models.Table) ([]ColumnStats, error) {
	if table == nil || table.Len() == 0 {
		return nil, fmt.Errorf("cannot analyze an empty table")
	}

	out := make([]ColumnStats, 0, len(table.NumericColumns()))
	for _, col := range table.NumericColumns() {
		values, err := table.Column(col)
		if err != nil {
			return nil, err
		}
		cs, err := describe(col, models.Float64s(values))
		if err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	return out, nil
}

func describe(col string, data stats.Float64Data) (ColumnStats, error) {
	cs := ColumnStats{Column: col}

	mean, err := stats.Mean(data)
	if err != nil {
		return cs, fmt.Errorf("mean of %s: %w", col, err)
	}
	median, err := stats.Median(data)
	if err != nil {
		return cs, fmt.Errorf("median of %s: %w", col, err)
	}
	cs.Mean, cs.Median = mean, median
	cs.Mode = mode(data)
	return cs, nil
}

// mode returns the smallest of the most frequent values, or nil when no
// value repeats. A single value is its own mode.
func mode(data []float64) *float64 {
	if len(data) == 0 {
		return nil
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)

	best, bestCount := sorted[0], 1
	count := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			count++
		} else {
			count = 1
		}
		if count > bestCount {
			best, bestCount = sorted[i], count
		}
	}
	if bestCount == 1 && len(sorted) > 1 {
		return nil
	}
	return &best
}
