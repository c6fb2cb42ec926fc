// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"
	"io"

	"fjacquet/finance-tracker/internal/container"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/report"
	"fjacquet/finance-tracker/internal/store"
	"fjacquet/finance-tracker/internal/validation"
)

// Options selects the ingestion source and the outputs of a run.
type Options struct {
	// Manual forces interactive entry even when Input is set.
	Manual bool
	// Input is the CSV file to import; empty means interactive entry.
	Input string
	// Output is the export path; .xlsx writes a workbook.
	Output string
	// Chart is the chart image path; empty skips the chart.
	Chart string
	// StatsFormat is "text" or "json".
	StatsFormat string
}

// IsInteractive reports whether the run prompts for values.
func (o Options) IsInteractive() bool {
	return o.Manual || o.Input == ""
}

// Ingest fills a new store from the prompts (reading in) or from the input
// file. A run that collects no month fails with store.ErrEmptyStore.
func Ingest(ctx context.Context, c *container.Container, opts Options, in io.Reader, out io.Writer) (*store.RecordStore, error) {
	log := c.GetLogger().WithField(logging.FieldStage, "ingest")

	var s *store.RecordStore
	if opts.IsInteractive() {
		log.Debug("Collecting data interactively")
		s = c.NewManualStore()
		if err := c.NewPrompter(in, out).Collect(ctx, c.Profile(), s); err != nil {
			return nil, err
		}
	} else {
		if err := validation.IsValidInputFile(opts.Input); err != nil {
			return nil, err
		}
		s = c.NewImportStore()
		if err := c.GetImporter().ImportFile(ctx, opts.Input, s); err != nil {
			return nil, err
		}
	}

	if s.Len() == 0 {
		return nil, store.ErrEmptyStore
	}
	return s, nil
}

// RunPipeline ingests data then prints the monthly summaries and statistics,
// renders the chart and exports the table.
func RunPipeline(ctx context.Context, c *container.Container, opts Options, in io.Reader, out io.Writer) error {
	if err := validateOutputs(opts); err != nil {
		return err
	}

	s, err := Ingest(ctx, c, opts, in, out)
	if err != nil {
		return err
	}

	if err := report.WriteSummary(out, s); err != nil {
		return fmt.Errorf("error writing summary: %w", err)
	}

	table, err := s.ToTable()
	if err != nil {
		return err
	}
	if err := writeStats(c, table, opts.StatsFormat, out); err != nil {
		return err
	}

	if opts.Chart != "" {
		if err := renderChart(c, s, opts.Chart, out); err != nil {
			return err
		}
	}

	if err := c.ExporterFor(opts.Output).Export(table, opts.Output); err != nil {
		return fmt.Errorf("error saving data: %w", err)
	}
	fmt.Fprintf(out, "Data saved to %s\n", opts.Output)
	return nil
}

// RunStats ingests data and prints only the statistics.
func RunStats(ctx context.Context, c *container.Container, opts Options, in io.Reader, out io.Writer) error {
	if err := validation.IsValidStatsFormat(opts.StatsFormat); err != nil {
		return err
	}
	s, err := Ingest(ctx, c, opts, in, out)
	if err != nil {
		return err
	}
	table, err := s.ToTable()
	if err != nil {
		return err
	}
	return writeStats(c, table, opts.StatsFormat, out)
}

// RunChart ingests data and renders only the chart.
func RunChart(ctx context.Context, c *container.Container, opts Options, in io.Reader, out io.Writer) error {
	if err := validation.IsValidChartPath(opts.Chart); err != nil {
		return err
	}
	s, err := Ingest(ctx, c, opts, in, out)
	if err != nil {
		return err
	}
	return renderChart(c, s, opts.Chart, out)
}

// DeriveSchema returns the schema an import of input declares, or the
// configured schema when input is empty.
func DeriveSchema(ctx context.Context, c *container.Container, input string) (models.Schema, error) {
	if input == "" {
		return c.GetSchema(), nil
	}
	s, err := Ingest(ctx, c, Options{Input: input}, nil, io.Discard)
	if err != nil {
		return models.Schema{}, err
	}
	return s.Schema(), nil
}

func validateOutputs(opts Options) error {
	if err := validation.IsValidOutputPath(opts.Output); err != nil {
		return err
	}
	if opts.Chart != "" {
		if err := validation.IsValidChartPath(opts.Chart); err != nil {
			return err
		}
	}
	return validation.IsValidStatsFormat(opts.StatsFormat)
}

func writeStats(c *container.Container, table *models.Table, format string, out io.Writer) error {
	results, err := report.Analyze(table)
	if err != nil {
		return err
	}
	rendered, err := c.GetGenerator().Generate(results, format)
	if err != nil {
		return err
	}
	_, err = out.Write(rendered)
	return err
}

func renderChart(c *container.Container, s *store.RecordStore, path string, out io.Writer) error {
	if err := report.RenderChart(s, path, c.ChartOptions()); err != nil {
		return err
	}
	c.GetLogger().Info("Chart rendered", logging.F(logging.FieldChartFile, path))
	fmt.Fprintf(out, "Chart saved to %s\n", path)
	return nil
}
