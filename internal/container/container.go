// Package container provides dependency injection for the finance tracker.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"io"

	"fjacquet/finance-tracker/internal/common"
	"fjacquet/finance-tracker/internal/config"
	"fjacquet/finance-tracker/internal/export"
	"fjacquet/finance-tracker/internal/ingest"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/report"
	"fjacquet/finance-tracker/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation; dependencies are only reachable
// through getter methods.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	schemaStore *store.SchemaStore
	schema      models.Schema
	policy      models.SchemaPolicy
	importer    *ingest.Importer
	generator   *report.Generator
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger is NewContainer with a caller-supplied logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	common.SetDelimiter(cfg.Delimiter())

	policy, err := models.ParseSchemaPolicy(cfg.Tracker.SchemaPolicy)
	if err != nil {
		return nil, err
	}

	schemaStore := store.NewSchemaStore(cfg.Tracker.SchemaFile, logger)
	if cfg.Tracker.SchemaFile != "" {
		if _, err := schemaStore.FindSchemaFile(cfg.Tracker.SchemaFile); err != nil {
			return nil, fmt.Errorf("schema file %s: %w", cfg.Tracker.SchemaFile, err)
		}
	}
	schema, err := schemaStore.Load(models.Schema{
		Expenses: cfg.Tracker.ExpenseCategories,
		Incomes:  cfg.Tracker.IncomeSources,
	})
	if err != nil {
		return nil, err
	}

	classifier, err := ingest.NewClassifier(cfg.Tracker.ImportRule, cfg.Tracker.IncomeMarker, schema)
	if err != nil {
		return nil, err
	}

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldPolicy, string(policy)),
		logging.F(logging.FieldRule, cfg.Tracker.ImportRule),
		logging.F(logging.FieldDelimiter, cfg.CSV.Delimiter))

	return &Container{
		logger:      logger,
		config:      cfg,
		schemaStore: schemaStore,
		schema:      schema,
		policy:      policy,
		importer:    ingest.NewImporter(classifier, logger),
		generator:   report.NewGenerator(logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetSchema returns the configured schema: the schema file merged over the
// configured categories and sources.
func (c *Container) GetSchema() models.Schema {
	return c.schema.Clone()
}

// GetSchemaStore returns the YAML schema store.
func (c *Container) GetSchemaStore() *store.SchemaStore {
	return c.schemaStore
}

// GetImporter returns the CSV importer.
func (c *Container) GetImporter() *ingest.Importer {
	return c.importer
}

// GetGenerator returns the statistics report generator.
func (c *Container) GetGenerator() *report.Generator {
	return c.generator
}

// Profile returns what interactive entry asks for: the configured periods,
// or months 1..N of the configured year.
func (c *Container) Profile() ingest.Profile {
	t := c.config.Tracker
	if len(t.Periods) > 0 {
		return ingest.ProfileFromLabels(t.Periods, c.schema.Expenses, c.schema.Incomes)
	}
	return ingest.DefaultProfile(t.Year, t.Months, c.schema.Expenses, c.schema.Incomes)
}

// NewImportStore returns an empty store whose schema the first imported row
// declares.
func (c *Container) NewImportStore() *store.RecordStore {
	return store.NewRecordStore(c.policy, c.logger)
}

// NewManualStore returns an empty store declared with the configured schema.
func (c *Container) NewManualStore() *store.RecordStore {
	return store.NewRecordStoreWithSchema(c.schema, c.policy, c.logger)
}

// NewPrompter returns a prompter reading answers from in.
func (c *Container) NewPrompter(in io.Reader, out io.Writer) *ingest.Prompter {
	return ingest.NewPrompter(in, out, c.logger)
}

// ExporterFor returns the exporter matching the output path.
func (c *Container) ExporterFor(path string) export.Exporter {
	return export.ForPath(path, c.logger)
}

// ChartOptions returns the configured chart options.
func (c *Container) ChartOptions() report.ChartOptions {
	return report.ChartOptions{
		Title:  c.config.Chart.Title,
		Width:  c.config.Chart.Width,
		Height: c.config.Chart.Height,
	}
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
