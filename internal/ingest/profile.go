package ingest

import (
	"fmt"

	"fjacquet/finance-tracker/internal/models"
)

// Period is one iteration of the interactive loop. Label is stored as the
// month; Name is how prompts refer to it.
type Period struct {
	Label string
	Name  string
}

// Profile describes what the interactive loop asks for, in order.
type Profile struct {
	Periods  []Period
	Expenses []string
	Incomes  []string
}

// DefaultProfile asks for months 1..months of year, labelled "{i}/{year}".
func DefaultProfile(year, months int, expenses, incomes []string) Profile {
	periods := make([]Period, months)
	for i := range periods {
		periods[i] = Period{
			Label: fmt.Sprintf("%d/%d", i+1, year),
			Name:  fmt.Sprintf("month %d", i+1),
		}
	}
	return Profile{Periods: periods, Expenses: expenses, Incomes: incomes}
}

// ProfileFromLabels asks for each label in order.
func ProfileFromLabels(labels, expenses, incomes []string) Profile {
	periods := make([]Period, len(labels))
	for i, l := range labels {
		periods[i] = Period{Label: l, Name: l}
	}
	return Profile{Periods: periods, Expenses: expenses, Incomes: incomes}
}

// Schema is the schema every record collected with this profile has.
func (p Profile) Schema() models.Schema {
	return models.Schema{Expenses: p.Expenses, Incomes: p.Incomes}.Clone()
}

func budgetPrompt(p Period) string {
	return fmt.Sprintf("Enter budget for %s: ", p.Name)
}

func expensePrompt(category string, p Period) string {
	return fmt.Sprintf("Enter expenses for %s in %s: ", category, p.Name)
}

func incomePrompt(source string, p Period) string {
	return fmt.Sprintf("Enter income from %s in %s: ", source, p.Name)
}
