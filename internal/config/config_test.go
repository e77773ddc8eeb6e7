package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := Load()
	assert.Equal(t, DefaultWorkbook, cfg.Workbook)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadFromViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set(KeyWorkbook, "/srv/staff/people.xlsx")
	viper.Set(KeyLogLevel, "debug")
	viper.Set(KeyLogFormat, "json")

	cfg := Load()
	assert.Equal(t, "/srv/staff/people.xlsx", cfg.Workbook)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}
