package rconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "prakriya.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadParsesKnownFields(t *testing.T) {
	path := writeConfig(t, `
data_dir = "./data/dhatupatha"
log_level = "debug"
json_logs = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "./data/dhatupatha", cfg.DataDir)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.JSONLogs)
}

func TestLoadDefaultsLogLevel(t *testing.T) {
	path := writeConfig(t, `data_dir = "./data"`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
}

type ganaOverride struct {
	SkipSanadi bool `mapstructure:"skip_sanadi"`
}

func TestDecodeSectionDecodesOverrideTable(t *testing.T) {
	path := writeConfig(t, `
data_dir = "./data"

[bhvadi]
skip_sanadi = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	var override ganaOverride
	require.NoError(t, cfg.DecodeSection("bhvadi", &override))
	require.True(t, override.SkipSanadi)
}

func TestDecodeSectionMissingNameErrors(t *testing.T) {
	path := writeConfig(t, `data_dir = "./data"`)
	cfg, err := Load(path)
	require.NoError(t, err)

	var override ganaOverride
	require.Error(t, cfg.DecodeSection("nonexistent", &override))
}

func TestLoadOrDefaultMissingFileReturnsDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
}
