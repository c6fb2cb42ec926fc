package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	ColumnMonth  = "Month"
	ColumnBudget = "Budget"
)

// Table is the row-per-month projection of the store. Columns always starts
// with Month and Budget; Values holds every column after Month, row-major.
type Table struct {
	Columns []string
	Months  []string
	Values  [][]decimal.Decimal
}

// NumericColumns returns every column except Month.
func (t *Table) NumericColumns() []string {
	return t.Columns[1:]
}

// Column returns the values of a numeric column in row order.
func (t *Table) Column(name string) ([]decimal.Decimal, error) {
	idx := -1
	for i, c := range t.NumericColumns() {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	out := make([]decimal.Decimal, len(t.Values))
	for r, row := range t.Values {
		out[r] = row[idx]
	}
	return out, nil
}

// Len is the number of rows.
func (t *Table) Len() int {
	return len(t.Months)
}

// Records returns the table as string rows, header first. Numbers use the
// decimal's default string form.
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.Months)+1)
	records = append(records, append([]string(nil), t.Columns...))
	for r, month := range t.Months {
		row := make([]string, 0, len(t.Columns))
		row = append(row, month)
		for _, v := range t.Values[r] {
			row = append(row, v.String())
		}
		records = append(records, row)
	}
	return records
}
