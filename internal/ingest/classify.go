package ingest

import (
	"fmt"
	"slices"
	"strings"

	"fjacquet/finance-tracker/internal/models"
)

// Classification lists, in header order, which columns feed expenses and
// which feed incomes. A column may appear in both.
type Classification struct {
	Expenses []string
	Incomes  []string
}

// ColumnClassifier decides what each non-Month/Budget column of an import
// header represents.
type ColumnClassifier interface {
	Classify(header []string) (Classification, error)
}

// DefaultIncomeMarker is the substring that marks an income column under
// the legacy rule.
const DefaultIncomeMarker = "Income"

// LegacyClassifier reproduces the historical import rule: every column other
// than Month and Budget is an expense, and every column whose name contains
// IncomeMarker is (also) an income. With headers such as Salary or
// Investments no income is recognised at all.
type LegacyClassifier struct {
	IncomeMarker string
}

func (c LegacyClassifier) Classify(header []string) (Classification, error) {
	marker := c.IncomeMarker
	if marker == "" {
		marker = DefaultIncomeMarker
	}

	var out Classification
	for _, col := range header {
		if col != models.ColumnMonth && col != models.ColumnBudget {
			out.Expenses = append(out.Expenses, col)
		}
		if strings.Contains(col, marker) {
			out.Incomes = append(out.Incomes, col)
		}
	}
	return out, nil
}

// SchemaClassifier classifies columns by an explicit caller-supplied schema.
// A column named in neither list is rejected.
type SchemaClassifier struct {
	Schema models.Schema
}

func (c SchemaClassifier) Classify(header []string) (Classification, error) {
	var out Classification
	var unknown []string
	for _, col := range header {
		if col == models.ColumnMonth || col == models.ColumnBudget {
			continue
		}
		isExpense := slices.Contains(c.Schema.Expenses, col)
		isIncome := slices.Contains(c.Schema.Incomes, col)
		if isExpense {
			out.Expenses = append(out.Expenses, col)
		}
		if isIncome {
			out.Incomes = append(out.Incomes, col)
		}
		if !isExpense && !isIncome {
			unknown = append(unknown, col)
		}
	}
	if len(unknown) > 0 {
		return Classification{}, fmt.Errorf("columns not declared in schema: %s", strings.Join(unknown, ", "))
	}
	return out, nil
}

// Import rules accepted in configuration.
const (
	RuleLegacy = "legacy"
	RuleSchema = "schema"
)

// NewClassifier builds the classifier for an import rule.
func NewClassifier(rule, incomeMarker string, schema models.Schema) (ColumnClassifier, error) {
	switch rule {
	case RuleLegacy, "":
		return LegacyClassifier{IncomeMarker: incomeMarker}, nil
	case RuleSchema:
		return SchemaClassifier{Schema: schema.Clone()}, nil
	default:
		return nil, fmt.Errorf("unknown import rule %q (must be %q or %q)", rule, RuleLegacy, RuleSchema)
	}
}
