package models

import "github.com/shopspring/decimal"

// MonthRecord is one period's budget, expenses by category and incomes by
// source. Month is a free-form label; neither uniqueness nor order is
// enforced.
type MonthRecord struct {
	Month    string
	Budget   decimal.Decimal
	Expenses Breakdown
	Incomes  Breakdown
}

// TotalExpenses sums the month's expense categories.
func (r MonthRecord) TotalExpenses() decimal.Decimal {
	return r.Expenses.Total()
}

// TotalIncomes sums the month's income sources.
func (r MonthRecord) TotalIncomes() decimal.Decimal {
	return r.Incomes.Total()
}

// Remaining is budget minus total expenses. It may be negative.
func (r MonthRecord) Remaining() decimal.Decimal {
	return r.Budget.Sub(r.TotalExpenses())
}
