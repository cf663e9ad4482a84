package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfigDirs keeps Load("") away from any real .diyai directory in
// the working tree or the home directory.
func isolateConfigDirs(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolateConfigDirs(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.CacheTTLMinutes)
	assert.False(t, cfg.Debug)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"cache_ttl_minutes": 5, "debug": true}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.CacheTTLMinutes)
	assert.True(t, cfg.Debug)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolateConfigDirs(t)
	t.Setenv("DIYAI_CACHE_TTL_MINUTES", "7")
	t.Setenv("DIYAI_DEBUG", "true")
	t.Setenv("DIYAI_CACHE_PATH", filepath.Join(t.TempDir(), "senses.db"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.CacheTTLMinutes)
	assert.True(t, cfg.Debug)
	assert.NotEmpty(t, cfg.CachePath)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"cache_ttl_minutes": -1}`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadValidatesWordNetDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"wordnet_dir": "/definitely/not/a/dir"}`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
