// Package store holds the in-memory record store that ingestion fills and
// reporting/export read, plus the YAML schema file store.
package store

import (
	"errors"
	"slices"

	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/parsererror"

	"github.com/shopspring/decimal"
)

// ErrEmptyStore is returned when a projection is requested before any month
// has been collected.
var ErrEmptyStore = errors.New("no monthly records collected")

// RecordStore keeps per-month data as parallel collections indexed by month
// position. The schema is declared by the first record (or up front) and
// every later month is checked against it according to the policy.
type RecordStore struct {
	months   []string
	budgets  []decimal.Decimal
	expenses []models.Breakdown
	incomes  []models.Breakdown

	schema   models.Schema
	declared bool
	policy   models.SchemaPolicy
	logger   logging.Logger
}

// NewRecordStore creates an empty store whose schema is declared by the
// first appended record.
func NewRecordStore(policy models.SchemaPolicy, logger logging.Logger) *RecordStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if policy == "" {
		policy = models.PolicyZeroFill
	}
	return &RecordStore{policy: policy, logger: logger}
}

// NewRecordStoreWithSchema creates an empty store with a declared schema.
func NewRecordStoreWithSchema(schema models.Schema, policy models.SchemaPolicy, logger logging.Logger) *RecordStore {
	s := NewRecordStore(policy, logger)
	s.schema = schema.Clone()
	s.declared = true
	return s
}

// Append adds one month.
func (s *RecordStore) Append(rec models.MonthRecord) error {
	return s.AppendAll([]models.MonthRecord{rec})
}

// AppendAll adds months in order. Either every record is admitted or the
// store is left unchanged.
func (s *RecordStore) AppendAll(records []models.MonthRecord) error {
	schema := s.schema.Clone()
	declared := s.declared

	for _, rec := range records {
		if !declared {
			schema = models.SchemaFromRecord(rec)
			declared = true
			continue
		}
		if err := s.reconcile(&schema.Expenses, rec.Expenses, rec.Month, "expense"); err != nil {
			return err
		}
		if err := s.reconcile(&schema.Incomes, rec.Incomes, rec.Month, "income"); err != nil {
			return err
		}
	}

	s.schema, s.declared = schema, declared
	for _, rec := range records {
		s.months = append(s.months, rec.Month)
		s.budgets = append(s.budgets, rec.Budget)
		s.expenses = append(s.expenses, rec.Expenses.Clone())
		s.incomes = append(s.incomes, rec.Incomes.Clone())
	}
	return nil
}

func (s *RecordStore) reconcile(declared *[]string, b models.Breakdown, month, kind string) error {
	missing, extra := models.Diff(*declared, b)
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	if s.policy == models.PolicyStrict {
		return &parsererror.SchemaError{Month: month, Kind: kind, Missing: missing, Extra: extra}
	}
	if len(missing) > 0 {
		s.logger.Debug("Zero-filling missing keys",
			logging.F(logging.FieldMonth, month),
			logging.F(logging.FieldColumn, missing))
	}
	if len(extra) > 0 {
		s.logger.Info("Extending schema with new keys",
			logging.F(logging.FieldMonth, month),
			logging.F(logging.FieldColumn, extra))
		*declared = append(*declared, extra...)
	}
	return nil
}

// Len is the number of months collected.
func (s *RecordStore) Len() int {
	return len(s.months)
}

// Policy returns the schema policy.
func (s *RecordStore) Policy() models.SchemaPolicy {
	return s.policy
}

// Schema returns the declared schema.
func (s *RecordStore) Schema() models.Schema {
	return s.schema.Clone()
}

// Months returns the month labels in ingestion order.
func (s *RecordStore) Months() []string {
	return slices.Clone(s.months)
}

// Budgets returns the budgets in ingestion order.
func (s *RecordStore) Budgets() []decimal.Decimal {
	return slices.Clone(s.budgets)
}

// Expenses returns month i's expense breakdown.
func (s *RecordStore) Expenses(i int) models.Breakdown {
	return s.expenses[i].Clone()
}

// Incomes returns month i's income breakdown.
func (s *RecordStore) Incomes(i int) models.Breakdown {
	return s.incomes[i].Clone()
}

// Record returns month i.
func (s *RecordStore) Record(i int) models.MonthRecord {
	return models.MonthRecord{
		Month:    s.months[i],
		Budget:   s.budgets[i],
		Expenses: s.Expenses(i),
		Incomes:  s.Incomes(i),
	}
}

// Records returns every month in ingestion order.
func (s *RecordStore) Records() []models.MonthRecord {
	out := make([]models.MonthRecord, s.Len())
	for i := range out {
		out[i] = s.Record(i)
	}
	return out
}

// HasIncomeData reports whether any month carries an income source.
func (s *RecordStore) HasIncomeData() bool {
	for _, inc := range s.incomes {
		if inc.Len() > 0 {
			return true
		}
	}
	return false
}

// ToTable projects the store onto the flat table used by both statistics
// and export: Month, Budget, expense columns then income columns in schema
// order. A name declared as both expense and income appears once, at its
// expense position, holding the income amount. Keys absent from a month
// project as zero.
func (s *RecordStore) ToTable() (*models.Table, error) {
	if s.Len() == 0 {
		return nil, ErrEmptyStore
	}

	columns := []string{models.ColumnMonth, models.ColumnBudget}
	pos := map[string]int{models.ColumnMonth: -1, models.ColumnBudget: 0}
	addColumn := func(name string) {
		if _, ok := pos[name]; ok {
			return
		}
		pos[name] = len(columns) - 1
		columns = append(columns, name)
	}
	for _, name := range s.schema.Expenses {
		addColumn(name)
	}
	for _, name := range s.schema.Incomes {
		addColumn(name)
	}

	values := make([][]decimal.Decimal, s.Len())
	for i := range s.months {
		row := make([]decimal.Decimal, len(columns)-1)
		for j := range row {
			row[j] = decimal.Zero
		}
		row[0] = s.budgets[i]
		fill := func(names []string, b models.Breakdown) {
			for _, name := range names {
				idx := pos[name]
				if idx <= 0 {
					continue
				}
				if v, ok := b.Get(name); ok {
					row[idx] = v
				}
			}
		}
		fill(s.schema.Expenses, s.expenses[i])
		fill(s.schema.Incomes, s.incomes[i])
		values[i] = row
	}

	return &models.Table{
		Columns: columns,
		Months:  slices.Clone(s.months),
		Values:  values,
	}, nil
}
