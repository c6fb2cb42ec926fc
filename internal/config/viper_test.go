package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so no config.yaml is found.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
	t.Setenv("HOME", dir)
	return dir
}

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FINANCE_LOG_LEVEL", "FINANCE_LOG_FORMAT", "FINANCE_CSV_DELIMITER",
		"FINANCE_TRACKER_YEAR", "FINANCE_TRACKER_MONTHS", "FINANCE_TRACKER_PERIODS",
		"FINANCE_TRACKER_EXPENSE_CATEGORIES", "FINANCE_TRACKER_INCOME_SOURCES",
		"FINANCE_TRACKER_SCHEMA_POLICY", "FINANCE_TRACKER_IMPORT_RULE",
		"FINANCE_TRACKER_INCOME_MARKER", "FINANCE_TRACKER_SCHEMA_FILE",
		"FINANCE_OUTPUT_FILE", "FINANCE_CHART_FILE", "FINANCE_CHART_TITLE",
		"FINANCE_CHART_WIDTH", "FINANCE_CHART_HEIGHT", "FINANCE_REPORT_STATS_FORMAT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdirTemp(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.Equal(t, ',', config.Delimiter())
	assert.Equal(t, 2023, config.Tracker.Year)
	assert.Equal(t, 12, config.Tracker.Months)
	assert.Empty(t, config.Tracker.Periods)
	assert.Equal(t, []string{"Extras", "Utilities"}, config.Tracker.ExpenseCategories)
	assert.Equal(t, []string{"Salary", "Investments"}, config.Tracker.IncomeSources)
	assert.Equal(t, "zero-fill", config.Tracker.SchemaPolicy)
	assert.Equal(t, "legacy", config.Tracker.ImportRule)
	assert.Equal(t, "Income", config.Tracker.IncomeMarker)
	assert.Equal(t, "finance_data.csv", config.Output.File)
	assert.Equal(t, "finance_chart.png", config.Chart.File)
	assert.Equal(t, "Personal Finances Over a Year", config.Chart.Title)
	assert.Equal(t, 10.0, config.Chart.Width)
	assert.Equal(t, 6.0, config.Chart.Height)
	assert.Equal(t, "text", config.Report.StatsFormat)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdirTemp(t)

	testEnvVars := map[string]string{
		"FINANCE_LOG_LEVEL":              "debug",
		"FINANCE_LOG_FORMAT":             "json",
		"FINANCE_CSV_DELIMITER":          ";",
		"FINANCE_TRACKER_YEAR":           "2024",
		"FINANCE_TRACKER_MONTHS":         "3",
		"FINANCE_TRACKER_SCHEMA_POLICY":  "strict",
		"FINANCE_TRACKER_IMPORT_RULE":    "schema",
		"FINANCE_OUTPUT_FILE":            "out.xlsx",
		"FINANCE_REPORT_STATS_FORMAT":    "json",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ';', config.Delimiter())
	assert.Equal(t, 2024, config.Tracker.Year)
	assert.Equal(t, 3, config.Tracker.Months)
	assert.Equal(t, "strict", config.Tracker.SchemaPolicy)
	assert.Equal(t, "schema", config.Tracker.ImportRule)
	assert.Equal(t, "out.xlsx", config.Output.File)
	assert.Equal(t, "json", config.Report.StatsFormat)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)
	dir := chdirTemp(t)

	configContent := `
log:
  level: "warn"
tracker:
  year: 2025
  periods: ["Q1", "Q2", "Q3", "Q4"]
  expense_categories: ["Rent", "Food"]
  income_sources: ["Salary"]
chart:
  file: ""
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0600))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, 2025, config.Tracker.Year)
	assert.Equal(t, []string{"Q1", "Q2", "Q3", "Q4"}, config.Tracker.Periods)
	assert.Equal(t, []string{"Rent", "Food"}, config.Tracker.ExpenseCategories)
	assert.Equal(t, []string{"Salary"}, config.Tracker.IncomeSources)
	assert.Equal(t, "", config.Chart.File)
	assert.Equal(t, "text", config.Log.Format)
}

func TestInitializeConfig_EnvOverridesFile(t *testing.T) {
	clearTestEnvVars(t)
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("tracker:\n  year: 2025\n"), 0600))
	t.Setenv("FINANCE_TRACKER_YEAR", "2030")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, 2030, config.Tracker.Year)
}

func TestInitializeConfigFromFile(t *testing.T) {
	clearTestEnvVars(t)
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("csv:\n  delimiter: \"|\"\n"), 0600))

	config, err := InitializeConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, '|', config.Delimiter())

	_, err = InitializeConfigFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "invalid log level"},
		{name: "bad log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "invalid log format"},
		{name: "long delimiter", mutate: func(c *Config) { c.CSV.Delimiter = ";;" }, wantErr: "single character"},
		{name: "zero months", mutate: func(c *Config) { c.Tracker.Months = 0 }, wantErr: "tracker.months"},
		{name: "too many months", mutate: func(c *Config) { c.Tracker.Months = 121 }, wantErr: "tracker.months"},
		{name: "periods make months irrelevant", mutate: func(c *Config) {
			c.Tracker.Months = 0
			c.Tracker.Periods = []string{"Q1"}
		}},
		{name: "bad policy", mutate: func(c *Config) { c.Tracker.SchemaPolicy = "lenient" }, wantErr: "schema policy"},
		{name: "bad import rule", mutate: func(c *Config) { c.Tracker.ImportRule = "guess" }, wantErr: "invalid import rule"},
		{name: "bad stats format", mutate: func(c *Config) { c.Report.StatsFormat = "xml" }, wantErr: "invalid stats format"},
		{name: "bad chart size", mutate: func(c *Config) { c.Chart.Width = 0 }, wantErr: "chart dimensions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func validConfig() *Config {
	c := &Config{}
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.CSV.Delimiter = ","
	c.Tracker.Months = 12
	c.Tracker.SchemaPolicy = "zero-fill"
	c.Tracker.ImportRule = "legacy"
	c.Chart.Width = 10
	c.Chart.Height = 6
	c.Report.StatsFormat = "text"
	return c
}
