package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Creates a temporary YAML config file in a temporary directory.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "test_config.yaml")

	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err, "Failed to write temporary config file")

	return configPath
}

func TestMustLoad(t *testing.T) {
	validYAML := `
env: "test"
skip_seed: true
metrics:
  address: ":9191"
session:
  path: "/tmp/store-admin/session.json"
`

	t.Run("loads from CONFIG_PATH", func(t *testing.T) {
		configPath := createTempConfigFile(t, validYAML)
		t.Setenv("CONFIG_PATH", configPath)

		cfg := MustLoad()

		assert.Equal(t, "test", cfg.Env)
		assert.True(t, cfg.SkipSeed)
		assert.Equal(t, ":9191", cfg.Metrics.Addr)
		assert.Equal(t, "/tmp/store-admin/session.json", cfg.Session.Path)
	})

	t.Run("defaults apply for omitted fields", func(t *testing.T) {
		configPath := createTempConfigFile(t, `env: "test"`)
		t.Setenv("CONFIG_PATH", configPath)

		cfg := MustLoad()

		assert.False(t, cfg.SkipSeed)
		assert.Equal(t, ":9090", cfg.Metrics.Addr)
		assert.Equal(t, "session.json", cfg.Session.Path)
	})
}
