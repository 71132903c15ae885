package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/stockpile-hq/stockpile/pkg/types"
)

func TestDefaultConfigYAMLParses(t *testing.T) {
	var cfg types.Config
	require.NoError(t, yaml.Unmarshal([]byte(defaultConfigYAML), &cfg))
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.DataDir, "data_dir stays unset by default")
}

func TestLoadConfigFirstRun(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)

	// First run drops a default config.yaml next to the database config.
	_, err = os.Stat(filepath.Join(dir, configFileExt))
	assert.NoError(t, err)
}

func TestLoadConfigReadsExisting(t *testing.T) {
	dir := t.TempDir()
	content := "data_dir: /srv/stockpile\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(content), 0o644))

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "/srv/stockpile", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	content := "log_level: warn\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(content), 0o644))

	_, err := loadConfig(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, configFileExt))
	require.NoError(t, err)
	assert.Equal(t, content, string(data), "existing config file must be left alone")
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			log := newLogger(tt.level)
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}
