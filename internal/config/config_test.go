package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  allowed_origins:
    - http://localhost:3000
catering:
  menu_path: testdata/menu.yaml
  prices_path: testdata/prices.yaml
storage:
  database_path: orders.db
observability:
  logging:
    level: debug
    format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "testdata/menu.yaml", cfg.Catering.MenuPath)
	assert.Equal(t, "orders.db", cfg.Storage.DatabasePath)
	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
storage:
  database_path: orders.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 8081, cfg.Server.DashboardPort)
	assert.Equal(t, "data/menu.yaml", cfg.Catering.MenuPath)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
}

func TestLoadExpandsEnvVars(t *testing.T) {
	os.Setenv("TEST_CATERING_DB", "expanded.db")
	defer os.Unsetenv("TEST_CATERING_DB")

	path := writeConfig(t, `
storage:
  database_path: ${TEST_CATERING_DB}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "expanded.db", cfg.Storage.DatabasePath)
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("CATERING_DB_PATH", "test.db")
	os.Setenv("CATERING_PORT", "7000")
	defer func() {
		os.Unsetenv("CATERING_DB_PATH")
		os.Unsetenv("CATERING_PORT")
	}()

	cfg := LoadFromEnv()
	assert.NotNil(t, cfg)
	assert.Equal(t, "test.db", cfg.Storage.DatabasePath)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "data/menu.yaml", cfg.Catering.MenuPath)
}

func TestLoadOrEnvWithPathFallsBack(t *testing.T) {
	cfg := LoadOrEnvWithPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, cfg)
	assert.Equal(t, "catering.db", cfg.Storage.DatabasePath)
}
