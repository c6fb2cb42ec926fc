// Package config provides functionality for loading environment variables
// and the tracker's hierarchical configuration.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"fjacquet/finance-tracker/internal/logging"

	"github.com/joho/godotenv"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file in the current or
// parent directory, once per process. Variables already set are kept.
func LoadEnv(logger logging.Logger) {
	once.Do(func() {
		envFile := FindEnvFile()
		if envFile == "" {
			logger.Debug("No .env file found, using environment variables")
			return
		}
		if err := LoadEnvFile(envFile); err != nil {
			logger.WithError(err).Warn("Error loading .env file")
			return
		}
		logger.Debug("Loaded environment variables", logging.F(logging.FieldFile, envFile))
	})
}

// FindEnvFile returns ".env" or "../.env", whichever exists first, or "".
func FindEnvFile() string {
	for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(envFile); err == nil {
			return envFile
		}
	}
	return ""
}

// LoadEnvFile loads one .env file without overriding existing variables.
func LoadEnvFile(path string) error {
	return godotenv.Load(path)
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
