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
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 9090

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "reservation-test"

[restaurant]
name = "La Dolce Vita"
data_file = "restaurant.toml"
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "reservation-test", cfg.Metrics.ServiceName)
	assert.Equal(t, "restaurant.toml", cfg.Restaurant.DataFile)
}

func TestLoadDefaults(t *testing.T) {
	// Пустой файл дает рабочие значения по умолчанию
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "restaurant.toml", cfg.Restaurant.DataFile)
}

func TestLoadInvalidPort(t *testing.T) {
	_, err := Load(writeConfig(t, `
[server]
http_port = -1
`))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
