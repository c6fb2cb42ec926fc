package export

import (
	"fmt"

	"fjacquet/finance-tracker/internal/fileutils"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet the XLSX exporter fills.
const SheetName = "Finances"

// XLSXExporter writes the table to the first sheet of a new workbook with a
// bold header row. Amounts are stored as numbers.
type XLSXExporter struct {
	logger logging.Logger
}

// NewXLSXExporter creates an XLSX exporter.
func NewXLSXExporter(logger logging.Logger) *XLSXExporter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &XLSXExporter{logger: logger}
}

func (e *XLSXExporter) Export(table *models.Table, path string) error {
	if table == nil {
		return fmt.Errorf("cannot export a nil table")
	}
	log := e.logger.WithField(logging.FieldOutputFile, path)
	log.Info("Writing XLSX file", logging.F(logging.FieldCount, table.Len()))

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	_ = f.SetAppProps(&excelize.AppProperties{Application: "finance-tracker"})
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetName); err != nil {
		return fmt.Errorf("error naming sheet: %w", err)
	}
	_ = f.SetColWidth(SheetName, "A", "A", 12)

	for col, name := range table.Columns {
		if err := setCell(f, col+1, 1, name); err != nil {
			return err
		}
	}
	bold, err := f.NewStyle(fontBold())
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(table.Columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
		return fmt.Errorf("error styling header: %w", err)
	}

	for r, month := range table.Months {
		row := r + 2
		if err := setCell(f, 1, row, month); err != nil {
			return err
		}
		for c, v := range table.Values[r] {
			if err := setCell(f, c+2, row, v.InexactFloat64()); err != nil {
				return err
			}
		}
	}

	if err := fileutils.EnsureParentDirectory(path); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		log.WithError(err).Error("Failed to save workbook")
		return fmt.Errorf("error saving XLSX file: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(SheetName, cell, value); err != nil {
		return fmt.Errorf("error writing cell %s: %w", cell, err)
	}
	return nil
}

func fontBold() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	}
}
