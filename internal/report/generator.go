package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"fjacquet/finance-tracker/internal/logging"
)

// Supported statistics report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Generator renders column statistics in a report format.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger}
}

// Generate renders the statistics as text (the default) or json.
func (g *Generator) Generate(results []ColumnStats, format string) ([]byte, error) {
	switch format {
	case FormatText, "":
		return g.generateText(results), nil
	case FormatJSON:
		return g.generateJSON(results)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateText(results []ColumnStats) []byte {
	var buf bytes.Buffer
	for _, r := range results {
		fmt.Fprintf(&buf, "Analysis for %s:\n\n", r.Column)
		fmt.Fprintf(&buf, "Mean: %s\n", formatFloat(r.Mean))
		fmt.Fprintf(&buf, "Median: %s\n", formatFloat(r.Median))
		mode := "No mode"
		if r.Mode != nil {
			mode = formatFloat(*r.Mode)
		}
		fmt.Fprintf(&buf, "Mode: %s\n\n", mode)
	}
	return buf.Bytes()
}

func (g *Generator) generateJSON(results []ColumnStats) ([]byte, error) {
	if results == nil {
		results = []ColumnStats{}
	}
	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
