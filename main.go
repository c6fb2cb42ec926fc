package main

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/finance-tracker/cmd/chart"
	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/cmd/schema"
	"fjacquet/finance-tracker/cmd/stats"
	"fjacquet/finance-tracker/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logger is created
	logrus.SetLevel(configureLogLevelDirectly())

	// 3. Initialize root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(stats.Cmd)
	root.Cmd.AddCommand(chart.Cmd)
	root.Cmd.AddCommand(schema.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	if envFile := config.FindEnvFile(); envFile != "" {
		_ = config.LoadEnvFile(envFile)
	}
}

// configureLogLevelDirectly reads FINANCE_LOG_LEVEL, falling back to info.
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := config.GetEnv(config.EnvPrefix+"_LOG_LEVEL", "info")

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
