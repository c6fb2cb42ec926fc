package report

import (
	"testing"

	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/store"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func month(label, budget string, expenses, incomes []models.Entry) models.MonthRecord {
	rec := models.MonthRecord{Month: label, Budget: d(budget)}
	rec.Expenses = models.NewBreakdown(expenses...)
	rec.Incomes = models.NewBreakdown(incomes...)
	return rec
}

func newStore(t *testing.T, records ...models.MonthRecord) *store.RecordStore {
	t.Helper()
	s := store.NewRecordStore(models.PolicyZeroFill, logging.NewMockLogger())
	require.NoError(t, s.AppendAll(records))
	return s
}
