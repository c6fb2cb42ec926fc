package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/finance-tracker/internal/fileutils"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// DefaultSchemaFile is the file name searched for when no path is given.
const DefaultSchemaFile = "schema.yaml"

// SchemaStore loads and saves the declared schema as YAML:
//
//	expenses: [Extras, Utilities]
//	incomes: [Salary, Investments]
type SchemaStore struct {
	SchemaFile string
	logger     logging.Logger
}

// NewSchemaStore creates a store for the given file; an empty name means
// DefaultSchemaFile looked up in the standard locations.
func NewSchemaStore(schemaFile string, logger logging.Logger) *SchemaStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &SchemaStore{SchemaFile: schemaFile, logger: logger}
}

// FindSchemaFile looks for filename in the working directory, ./config and
// $HOME/.config/finance-tracker.
func (s *SchemaStore) FindSchemaFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "finance-tracker", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// Load reads the schema file and fills any empty list from defaults. A
// missing file yields defaults unchanged.
func (s *SchemaStore) Load(defaults models.Schema) (models.Schema, error) {
	filename := s.SchemaFile
	if filename == "" {
		filename = DefaultSchemaFile
	}

	filePath, err := s.FindSchemaFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("Schema file not found, using configured schema",
				logging.F(logging.FieldSchemaFile, filename))
			return defaults.Clone(), nil
		}
		return models.Schema{}, fmt.Errorf("error resolving schema file: %w", err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- user-supplied schema path
	if err != nil {
		return models.Schema{}, fmt.Errorf("error reading schema file: %w", err)
	}

	var schema models.Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return models.Schema{}, fmt.Errorf("error parsing schema file %s: %w", filePath, err)
	}

	if err := mergo.Merge(&schema, defaults.Clone()); err != nil {
		return models.Schema{}, fmt.Errorf("error merging schema defaults: %w", err)
	}

	s.logger.Info("Loaded schema",
		logging.F(logging.FieldSchemaFile, filePath),
		logging.F(logging.FieldCount, len(schema.Expenses)+len(schema.Incomes)))
	return schema, nil
}

// Save writes schema to path, creating parent directories.
func (s *SchemaStore) Save(path string, schema models.Schema) error {
	if path == "" {
		path = s.SchemaFile
	}
	if path == "" {
		path = DefaultSchemaFile
	}

	data, err := yaml.Marshal(schema)
	if err != nil {
		return fmt.Errorf("error marshaling schema: %w", err)
	}

	if err := fileutils.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing schema file: %w", err)
	}

	s.logger.Info("Saved schema", logging.F(logging.FieldSchemaFile, path))
	return nil
}
