// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"fjacquet/finance-tracker/cmd/common"
	"fjacquet/finance-tracker/internal/config"
	"fjacquet/finance-tracker/internal/container"
	"fjacquet/finance-tracker/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Manual      bool
	Input       string
	Output      string
	Chart       string
	Schema      string
	StatsFormat string
	ConfigFile  string
	LogLevel    string
	LogFormat   string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finance-tracker",
		Short: "Track and visualize monthly personal finances.",
		Long: `finance-tracker collects monthly budgets, expenses and incomes, either
interactively or from a CSV file, then prints monthly summaries and
statistics, draws a chart and saves the data to CSV or XLSX.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := GetContainer()
			if err != nil {
				return err
			}
			return common.RunPipeline(cmd.Context(), c, Options(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appContainer != nil {
				_ = appContainer.Close()
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	appContainer *container.Container
	appConfig    *config.Config
	initOnce     sync.Once
)

// Init initializes the root command and all flags
func Init() {
	initOnce.Do(func() {
		Cmd.Flags().BoolVarP(&SharedFlags.Manual, "manual", "m", false, "Enter data manually")

		Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV filename")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "finance_data.csv", "Output filename (.csv or .xlsx)")
		Cmd.PersistentFlags().StringVar(&SharedFlags.Chart, "chart", "finance_chart.png", "Chart image filename (empty to skip)")
		Cmd.PersistentFlags().StringVar(&SharedFlags.Schema, "schema", "", "YAML schema file with expense categories and income sources")
		Cmd.PersistentFlags().StringVar(&SharedFlags.StatsFormat, "stats-format", "text", "Statistics format (text or json)")
		Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches config.yaml)")
		Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
		Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text or json)")
	})
}

// setup loads the configuration, lets explicitly set flags override it and
// builds the container every command uses.
func setup(cmd *cobra.Command, args []string) error {
	config.LoadEnv(Log)

	cfg, err := config.InitializeConfigFromFile(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}

	appConfig, appContainer = cfg, c
	Log = c.GetLogger()
	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = SharedFlags.LogFormat
	}
	if flags.Changed("schema") {
		cfg.Tracker.SchemaFile = SharedFlags.Schema
	}
	if flags.Changed("stats-format") {
		cfg.Report.StatsFormat = SharedFlags.StatsFormat
	}
	if flags.Changed("output") {
		cfg.Output.File = SharedFlags.Output
	}
	if flags.Changed("chart") {
		cfg.Chart.File = SharedFlags.Chart
	}
}

// Options returns the run options after config and flags are merged.
func Options() common.Options {
	opts := common.Options{
		Manual: SharedFlags.Manual,
		Input:  SharedFlags.Input,
	}
	if appConfig != nil {
		opts.Output = appConfig.Output.File
		opts.Chart = appConfig.Chart.File
		opts.StatsFormat = appConfig.Report.StatsFormat
	}
	return opts
}

// GetContainer returns the container built for the running command.
func GetContainer() (*container.Container, error) {
	if appContainer == nil {
		return nil, fmt.Errorf("command setup has not run")
	}
	return appContainer, nil
}

// GetConfig returns the merged configuration, or nil before the command
// starts.
func GetConfig() *config.Config {
	return appConfig
}

// ResetFlags restores every flag to its default and forgets the previous
// run's container, for executing the command more than once in a process.
func ResetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	Cmd.Flags().VisitAll(reset)
	Cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range Cmd.Commands() {
		sub.Flags().VisitAll(reset)
	}
	appContainer, appConfig = nil, nil
}
