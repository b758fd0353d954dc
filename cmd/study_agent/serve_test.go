package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeServeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestResolveServeConfig_DefaultsApply(t *testing.T) {
	cfg, err := resolveServeConfig("", defaultServePort, false)
	require.NoError(t, err)
	assert.Equal(t, defaultServePort, cfg.Port)
}

func TestResolveServeConfig_ConfigFilePortUsed(t *testing.T) {
	path := writeServeConfig(t, `{"port": 9090}`)

	cfg, err := resolveServeConfig(path, defaultServePort, false)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
}

func TestResolveServeConfig_FlagOverridesConfigFile(t *testing.T) {
	path := writeServeConfig(t, `{"port": 9090}`)

	cfg, err := resolveServeConfig(path, 7070, true)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
}

func TestResolveServeConfig_InvalidPortRejected(t *testing.T) {
	path := writeServeConfig(t, `{"port": 70000}`)

	_, err := resolveServeConfig(path, defaultServePort, false)
	assert.Error(t, err)
}

func TestResolveServeConfig_MissingFile(t *testing.T) {
	_, err := resolveServeConfig(filepath.Join(t.TempDir(), "missing.json"), defaultServePort, false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}
