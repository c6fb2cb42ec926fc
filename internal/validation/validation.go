// Package validation checks user-supplied paths and formats before a run
// starts writing anything.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/finance-tracker/internal/fileutils"
)

// ChartFormats are the image extensions the chart renderer can write.
var ChartFormats = []string{"png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff"}

// IsValidInputFile checks that path, when it exists, is a regular file.
// A missing file is left for the importer to report.
func IsValidInputFile(path string) error {
	if path == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if fileutils.DirectoryExists(path) {
		return fmt.Errorf("input path %s is a directory", path)
	}
	return nil
}

// IsValidOutputPath checks that path can name an output file.
func IsValidOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if fileutils.DirectoryExists(path) {
		return fmt.Errorf("output path %s is a directory", path)
	}
	return nil
}

// IsValidChartPath checks that path has an image extension the chart
// renderer supports.
func IsValidChartPath(path string) error {
	if err := IsValidOutputPath(path); err != nil {
		return err
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range ChartFormats {
		if ext == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported chart format: %q. Supported formats are %s", ext, strings.Join(ChartFormats, ", "))
}

// IsValidStatsFormat checks if the given statistics format is supported.
func IsValidStatsFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unsupported stats format: %s. Supported formats are 'text', 'json'", format)
	}
}
