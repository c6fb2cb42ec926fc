// Package report renders what the tracker shows after ingestion: the
// per-month summary, descriptive statistics and the finance chart.
package report

import (
	"fmt"
	"io"

	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/store"

	"github.com/fatih/color"
)

var monthHeader = color.New(color.FgCyan, color.Bold)

// WriteSummary writes one block per month: expenses by category, their
// total, the budget and what remains of it.
func WriteSummary(w io.Writer, s *store.RecordStore) error {
	if s.Len() == 0 {
		return store.ErrEmptyStore
	}

	for _, rec := range s.Records() {
		if _, err := monthHeader.Fprintf(w, "Month: %s\n", rec.Month); err != nil {
			return err
		}
		lines := []string{"Expenses:"}
		for _, e := range rec.Expenses.Entries() {
			lines = append(lines, fmt.Sprintf("%s: %s", e.Name, models.FormatAmount(e.Amount)))
		}
		lines = append(lines,
			"Total Expenses: "+models.FormatAmount(rec.TotalExpenses()),
			"Budget: "+models.FormatAmount(rec.Budget),
			"Budget Remaining: "+models.FormatAmount(rec.Remaining()),
			"",
		)
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
