package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"fjacquet/finance-tracker/internal/common"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/parsererror"
	"fjacquet/finance-tracker/internal/store"

	"github.com/shopspring/decimal"
)

// ErrFileNotFound is returned when the import file does not exist.
var ErrFileNotFound = errors.New("file not found")

const expectedFormat = "CSV with a header row containing Month and Budget"

// Importer reads monthly records from CSV files.
type Importer struct {
	classifier ColumnClassifier
	logger     logging.Logger
}

// NewImporter creates an importer; a nil classifier means the legacy rule.
func NewImporter(classifier ColumnClassifier, logger logging.Logger) *Importer {
	if classifier == nil {
		classifier = LegacyClassifier{}
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Importer{classifier: classifier, logger: logger}
}

// ImportFile appends every data row of the CSV at path to s. Nothing is
// appended unless the whole file parses.
func (im *Importer) ImportFile(ctx context.Context, path string, s *store.RecordStore) error {
	log := im.logger.WithField(logging.FieldInputFile, path)
	log.Info("Importing CSV file")

	file, err := os.Open(path) // #nosec G304 -- input path chosen by the user
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("file %s: %w", path, ErrFileNotFound)
		}
		return fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	records, err := im.Parse(ctx, file, path)
	if err != nil {
		log.WithError(err).Error("Import failed")
		return err
	}
	if err := s.AppendAll(records); err != nil {
		return err
	}

	log.Info("Imported CSV file", logging.F(logging.FieldCount, len(records)))
	return nil
}

// Parse reads records from r; source names the input in errors.
func (im *Importer) Parse(ctx context.Context, r io.Reader, source string) ([]models.MonthRecord, error) {
	header, rows, err := common.ReadRecords(r)
	if err != nil {
		var csvErr *csv.ParseError
		if errors.Is(err, io.EOF) {
			return nil, &parsererror.InvalidFormatError{FilePath: source, ExpectedFormat: expectedFormat, Msg: "file is empty"}
		}
		if errors.As(err, &csvErr) {
			return nil, &parsererror.InvalidFormatError{FilePath: source, ExpectedFormat: expectedFormat, Msg: "malformed CSV", Err: err}
		}
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}

	index := columnIndex(header)
	monthIdx, ok := index[models.ColumnMonth]
	if !ok {
		return nil, &parsererror.DataExtractionError{FilePath: source, FieldName: models.ColumnMonth, Reason: "column not found in header"}
	}
	budgetIdx, ok := index[models.ColumnBudget]
	if !ok {
		return nil, &parsererror.DataExtractionError{FilePath: source, FieldName: models.ColumnBudget, Reason: "column not found in header"}
	}

	classes, err := im.classifier.Classify(header)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{FilePath: source, ExpectedFormat: expectedFormat, Msg: err.Error()}
	}
	im.logger.Debug("Classified columns",
		logging.F("expenses", classes.Expenses),
		logging.F("incomes", classes.Incomes))

	layout := rowLayout{
		month:    monthIdx,
		budget:   field{name: models.ColumnBudget, idx: budgetIdx},
		expenses: bind(classes.Expenses, index),
		incomes:  bind(classes.Incomes, index),
	}

	records := make([]models.MonthRecord, 0, len(rows))
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := layout.record(row, source, i+1)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// field is a named column bound to its position in the row.
type field struct {
	name string
	idx  int
}

type rowLayout struct {
	month    int
	budget   field
	expenses []field
	incomes  []field
}

// columnIndex maps each header name to its position. When a name repeats,
// the last column wins and the earlier ones are ignored.
func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}
	return index
}

// bind resolves names to row positions once, dropping repeated names while
// keeping first-seen order.
func bind(names []string, index map[string]int) []field {
	seen := make(map[string]bool, len(names))
	out := make([]field, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, field{name: name, idx: index[name]})
	}
	return out
}

func (l rowLayout) record(row []string, source string, rowNum int) (models.MonthRecord, error) {
	amount := func(f field) (decimal.Decimal, error) {
		raw := row[f.idx]
		v, err := models.ParseAmount(raw)
		if err != nil {
			return decimal.Zero, &parsererror.ParseError{Source: source, Row: rowNum, Column: f.name, Value: raw, Err: err}
		}
		return v, nil
	}

	rec := models.MonthRecord{Month: row[l.month]}

	budget, err := amount(l.budget)
	if err != nil {
		return rec, err
	}
	rec.Budget = budget

	for _, f := range l.expenses {
		v, err := amount(f)
		if err != nil {
			return rec, err
		}
		rec.Expenses.Set(f.name, v)
	}
	for _, f := range l.incomes {
		v, err := amount(f)
		if err != nil {
			return rec, err
		}
		rec.Incomes.Set(f.name, v)
	}
	return rec, nil
}
