package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HOST", "PORT", "DEBUG", "TRUST_PROXY", "CONFIG_FILE"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 5000, cfg.Port)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.TrustProxy)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", " 8080 ")
	t.Setenv("DEBUG", "True")
	t.Setenv("TRUST_PROXY", "1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Config{Host: "127.0.0.1", Port: 8080, Debug: true, TrustProxy: true}, cfg)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{"non-integer port", "PORT", "abc"},
		{"zero port", "PORT", "0"},
		{"port too large", "PORT", "70000"},
		{"negative port", "PORT", "-1"},
		{"bad debug", "DEBUG", "maybe"},
		{"bad trust proxy", "TRUST_PROXY", "sometimes"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.val)
			_, err := Load("")
			assert.Error(t, err, "%s=%q", tc.key, tc.val)
		})
	}
}

func TestLoadFileThenEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.yaml", "host: 10.0.0.1\nport: 9000\ndebug: true\ntrust_proxy: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Host: "10.0.0.1", Port: 9000, Debug: true, TrustProxy: true}, cfg)

	t.Setenv("PORT", "9100")
	t.Setenv("DEBUG", "false")
	t.Setenv("TRUST_PROXY", "false")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.TrustProxy)
	assert.Equal(t, "10.0.0.1", cfg.Host)
}

func TestLoadFileFromEnvVar(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", writeConfig(t, "config.yaml", "port: 7000\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, DefaultHost, cfg.Host)
}

func TestLoadFileErrors(t *testing.T) {
	clearEnv(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(writeConfig(t, "unknown.yaml", "listen: :80\n"))
		assert.Error(t, err)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "empty.yaml", ""))
		require.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port)
	})
}
