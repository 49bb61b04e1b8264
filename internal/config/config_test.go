package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithNoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults().DefaultK, cfg.DefaultK)
	assert.Equal(t, Defaults().Format, cfg.Format)
}

func TestLoadReadsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xsss.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_threshold: 4\ndefault_shares: 9\nformat: hex\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.DefaultK)
	assert.Equal(t, 9, cfg.DefaultN)
	assert.Equal(t, "hex", cfg.Format)
}

func TestLoadEnvOverridesDefault(t *testing.T) {
	t.Setenv("XSSS_DEFAULT_THRESHOLD", "7")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.DefaultK)
}
