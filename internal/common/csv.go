// Package common provides the CSV mechanics shared by import and export.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"sync"

	"fjacquet/finance-tracker/internal/fileutils"
	"fjacquet/finance-tracker/internal/logging"

	"github.com/gocarina/gocsv"
)

var (
	delimMu sync.RWMutex
	// delimiter used by every reader and writer built here
	delimiter = ','
)

// SetDelimiter changes the field delimiter for CSV input and output.
func SetDelimiter(delim rune) {
	delimMu.Lock()
	delimiter = delim
	delimMu.Unlock()

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})
}

// Delimiter returns the configured field delimiter.
func Delimiter() rune {
	delimMu.RLock()
	defer delimMu.RUnlock()
	return delimiter
}

// NewReader returns a CSV reader using the configured delimiter. Every row
// must have as many fields as the first one.
func NewReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter()
	reader.FieldsPerRecord = 0
	return reader
}

// ReadRecords reads header and data rows from r.
func ReadRecords(r io.Reader) (header []string, rows [][]string, err error) {
	reader := NewReader(r)

	header, err = reader.Read()
	if err != nil {
		return nil, nil, err
	}
	// Drop a UTF-8 BOM left by spreadsheet exports.
	if len(header) > 0 && len(header[0]) >= 3 && header[0][:3] == "\xef\xbb\xbf" {
		header[0] = header[0][3:]
	}

	rows, err = reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	return header, rows, nil
}

// WriteRecords writes records (header first) to csvFile, creating parent
// directories as needed.
func WriteRecords(records [][]string, csvFile string, logger logging.Logger) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}

	logger.Info("Writing CSV file",
		logging.F(logging.FieldOutputFile, csvFile),
		logging.F(logging.FieldCount, len(records)),
		logging.F(logging.FieldDelimiter, string(Delimiter())))

	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteTo(file, records); err != nil {
		logger.WithError(err).Error("Failed to write CSV data")
		return err
	}
	return nil
}

// WriteTo writes records to w with the configured delimiter.
func WriteTo(w io.Writer, records [][]string) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter()
	safe := gocsv.NewSafeCSVWriter(csvWriter)

	for _, record := range records {
		if err := safe.Write(record); err != nil {
			return fmt.Errorf("error writing CSV data: %w", err)
		}
	}
	safe.Flush()
	if err := safe.Error(); err != nil {
		return fmt.Errorf("error flushing CSV data: %w", err)
	}
	return nil
}
