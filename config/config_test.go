package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drawauth.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 25, cfg.Threshold)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, 168*time.Hour, cfg.Logging.MaxAge)
	assert.Equal(t, 24*time.Hour, cfg.Logging.RotationTime)
	assert.Empty(t, cfg.Logging.File)
	assert.Empty(t, cfg.Transparency.Dir)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
threshold = 35

[logging]
level = "debug"
format = "json"
file = "/tmp/drawauth.%Y%m%d"
rotation_time = "1h"

[transparency]
dir = "/tmp/artefacts"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 35, cfg.Threshold)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/drawauth.%Y%m%d", cfg.Logging.File)
	assert.Equal(t, time.Hour, cfg.Logging.RotationTime)
	assert.Equal(t, 168*time.Hour, cfg.Logging.MaxAge, "unset keys keep defaults")
	assert.Equal(t, "/tmp/artefacts", cfg.Transparency.Dir)
}

func TestLoad_ZeroThresholdIsKept(t *testing.T) {
	cfg, err := Load(writeConfig(t, "threshold = 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Threshold)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"threshold too large", "threshold = 65\n", "Threshold"},
		{"negative threshold", "threshold = -1\n", "Threshold"},
		{"bad level", "[logging]\nlevel = \"loud\"\n", "Level"},
		{"bad format", "[logging]\nformat = \"xml\"\n", "Format"},
		{"unknown key", "treshold = 20\n", "treshold"},
		{"not toml", "threshold = = 3", "failed to load config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
