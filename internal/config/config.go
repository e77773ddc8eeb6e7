// Package config resolves runtime configuration from flags, environment
// variables, .env files and an optional config file, in that order of
// precedence, through viper.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultWorkbook is the workbook path used when nothing else configures it.
const DefaultWorkbook = "employees.xlsx"

// Viper keys. Flags are bound to these by the command layer; environment
// variables use the STAFFDIR_ prefix with dashes mapped to underscores
// (STAFFDIR_WORKBOOK, STAFFDIR_LOG_LEVEL, STAFFDIR_LOG_FORMAT).
const (
	KeyWorkbook  = "workbook"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

// Config holds the resolved runtime configuration.
type Config struct {
	Workbook  string
	LogLevel  string
	LogFormat string
}

// Load reads the resolved values out of viper, applying defaults for
// anything unset.
func Load() Config {
	cfg := Config{
		Workbook:  viper.GetString(KeyWorkbook),
		LogLevel:  viper.GetString(KeyLogLevel),
		LogFormat: viper.GetString(KeyLogFormat),
	}
	if cfg.Workbook == "" {
		cfg.Workbook = DefaultWorkbook
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}
	return cfg
}

// LoadEnvFiles loads a .env file from the working directory when present.
// Variables already set in the environment win.
func LoadEnvFiles() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
}
