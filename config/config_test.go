package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Server struct {
		Name string `mapstructure:"name" structs:"name"`
		Port int    `mapstructure:"port" structs:"port"`
	} `mapstructure:"server" structs:"server"`
	Debug bool `mapstructure:"debug" structs:"debug"`
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseConfigFromPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "server:\n  name: alpha\n  port: 8080\n")

	cfg, err := ParseConfig[testConfig]([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, "alpha", cfg.Server.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Debug)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.yaml", "server:\n  name: alpha\n  port: 8080\n")
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_DEBUG", "true")

	cfg, err := ParseConfig[testConfig]([]string{dir}, WithEnvPrefix("APP"), WithConfigName("app"))
	require.NoError(t, err)
	assert.Equal(t, "alpha", cfg.Server.Name)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Debug)
}

func TestMissingFileFallsBack(t *testing.T) {
	t.Run("environment only", func(t *testing.T) {
		t.Setenv("FALLBACK_SERVER_NAME", "from-env")
		cfg, err := ParseConfig[testConfig]([]string{t.TempDir()}, WithEnvPrefix("FALLBACK"))
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Server.Name)
	})

	t.Run("embedded", func(t *testing.T) {
		embedded := []byte("server:\n  name: embedded\n  port: 1\n")
		cfg, err := ParseConfigWithEmbedded[testConfig]([]string{t.TempDir()}, embedded)
		require.NoError(t, err)
		assert.Equal(t, "embedded", cfg.Server.Name)
		assert.Equal(t, 1, cfg.Server.Port)
	})
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		file string
		body string
	}{
		{"c.yaml", "server:\n  name: y\n  port: 1\n"},
		{"c.json", `{"server": {"name": "y", "port": 1}}`},
		{"c.toml", "[server]\nname = \"y\"\nport = 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			cfg, err := ParseFile[testConfig](writeFile(t, dir, tt.file, tt.body))
			require.NoError(t, err)
			assert.Equal(t, "y", cfg.Server.Name)
			assert.Equal(t, 1, cfg.Server.Port)
		})
	}
}

func TestParseFileErrors(t *testing.T) {
	_, err := ParseFile[testConfig](filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read")

	bad := writeFile(t, t.TempDir(), "bad.yaml", "server: [unclosed\n")
	_, err = ParseFile[testConfig](bad)
	assert.Error(t, err)
}
