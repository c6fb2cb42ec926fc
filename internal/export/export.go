// Package export writes the table projection of the record store to disk.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/finance-tracker/internal/common"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
)

// Exporter writes a table to path.
type Exporter interface {
	Export(table *models.Table, path string) error
}

// ForPath picks the exporter for path: .xlsx gets a workbook, anything else
// a CSV file.
func ForPath(path string, logger logging.Logger) Exporter {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return NewXLSXExporter(logger)
	}
	return NewCSVExporter(logger)
}

// CSVExporter writes one header row then one row per month.
type CSVExporter struct {
	logger logging.Logger
}

// NewCSVExporter creates a CSV exporter.
func NewCSVExporter(logger logging.Logger) *CSVExporter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CSVExporter{logger: logger}
}

func (e *CSVExporter) Export(table *models.Table, path string) error {
	if table == nil {
		return fmt.Errorf("cannot export a nil table")
	}
	return common.WriteRecords(table.Records(), path, e.logger)
}
