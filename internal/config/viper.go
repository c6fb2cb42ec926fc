// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"fjacquet/finance-tracker/internal/ingest"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/report"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the tracker reads.
const EnvPrefix = "FINANCE"

// MaxMonths bounds tracker.months.
const MaxMonths = 120

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Tracker struct {
		Year              int      `mapstructure:"year" yaml:"year"`
		Months            int      `mapstructure:"months" yaml:"months"`
		Periods           []string `mapstructure:"periods" yaml:"periods"`
		ExpenseCategories []string `mapstructure:"expense_categories" yaml:"expense_categories"`
		IncomeSources     []string `mapstructure:"income_sources" yaml:"income_sources"`
		SchemaPolicy      string   `mapstructure:"schema_policy" yaml:"schema_policy"`
		ImportRule        string   `mapstructure:"import_rule" yaml:"import_rule"`
		IncomeMarker      string   `mapstructure:"income_marker" yaml:"income_marker"`
		SchemaFile        string   `mapstructure:"schema_file" yaml:"schema_file"`
	} `mapstructure:"tracker" yaml:"tracker"`

	Output struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"output" yaml:"output"`

	Chart struct {
		File   string  `mapstructure:"file" yaml:"file"`
		Title  string  `mapstructure:"title" yaml:"title"`
		Width  float64 `mapstructure:"width" yaml:"width"`
		Height float64 `mapstructure:"height" yaml:"height"`
	} `mapstructure:"chart" yaml:"chart"`

	Report struct {
		StatsFormat string `mapstructure:"stats_format" yaml:"stats_format"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return InitializeConfigFromFile("")
}

// InitializeConfigFromFile is InitializeConfig with an explicit config file.
// An empty path searches the default locations; a named file must exist.
func InitializeConfigFromFile(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.finance-tracker")
		v.AddConfigPath(".finance-tracker")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless named)
	if err := v.ReadInConfig(); err != nil {
		if configFile != "" {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("tracker.year", 2023)
	v.SetDefault("tracker.months", 12)
	v.SetDefault("tracker.periods", []string{})
	v.SetDefault("tracker.expense_categories", []string{"Extras", "Utilities"})
	v.SetDefault("tracker.income_sources", []string{"Salary", "Investments"})
	v.SetDefault("tracker.schema_policy", string(models.PolicyZeroFill))
	v.SetDefault("tracker.import_rule", ingest.RuleLegacy)
	v.SetDefault("tracker.income_marker", ingest.DefaultIncomeMarker)
	v.SetDefault("tracker.schema_file", "")

	v.SetDefault("output.file", "finance_data.csv")

	v.SetDefault("chart.file", "finance_chart.png")
	v.SetDefault("chart.title", report.DefaultChartTitle)
	v.SetDefault("chart.width", 10.0)
	v.SetDefault("chart.height", 6.0)

	v.SetDefault("report.stats_format", report.FormatText)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if len(config.Tracker.Periods) == 0 && (config.Tracker.Months < 1 || config.Tracker.Months > MaxMonths) {
		return fmt.Errorf("tracker.months must be between 1 and %d, got: %d", MaxMonths, config.Tracker.Months)
	}

	if _, err := models.ParseSchemaPolicy(config.Tracker.SchemaPolicy); err != nil {
		return err
	}

	if config.Tracker.ImportRule != ingest.RuleLegacy && config.Tracker.ImportRule != ingest.RuleSchema {
		return fmt.Errorf("invalid import rule: %s (must be '%s' or '%s')", config.Tracker.ImportRule, ingest.RuleLegacy, ingest.RuleSchema)
	}

	if config.Report.StatsFormat != report.FormatText && config.Report.StatsFormat != report.FormatJSON {
		return fmt.Errorf("invalid stats format: %s (must be 'text' or 'json')", config.Report.StatsFormat)
	}

	if config.Chart.Width <= 0 || config.Chart.Height <= 0 {
		return fmt.Errorf("chart dimensions must be positive, got: %gx%g", config.Chart.Width, config.Chart.Height)
	}

	return nil
}

// Validate re-checks the configuration after flag overrides.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// Delimiter returns the configured CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	return []rune(c.CSV.Delimiter)[0]
}
