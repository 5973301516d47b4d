package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "test_config.yaml")

	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err, "Failed to write temporary config file")

	return configPath
}

func TestLoad(t *testing.T) {

	t.Run("Success - Valid Config File", func(t *testing.T) {
		validYAML := `
env: "test"
api:
  base_url: "https://api.medicart.example"
  timeout: "5s"
credentials_path: "/tmp/creds.json"
`
		configPath := createTempConfigFile(t, validYAML)

		cfg, err := Load(configPath)

		require.NoError(t, err)
		assert.Equal(t, "test", cfg.Env)
		assert.Equal(t, "https://api.medicart.example", cfg.API.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.API.Timeout)
		assert.Equal(t, "/tmp/creds.json", cfg.CredentialsPath)
	})

	t.Run("Success - No Config File Uses Env And Defaults", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "")
		t.Setenv("MEDICART_API_URL", "http://localhost:9999")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9999", cfg.API.BaseURL)
		assert.Equal(t, 15*time.Second, cfg.API.Timeout)
		assert.Equal(t, "local", cfg.Env)
	})

	t.Run("Success - Defaults Point At The Local API", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "")
		// t.Setenv registers the restore; unset so the default applies.
		t.Setenv("MEDICART_API_URL", "placeholder")
		os.Unsetenv("MEDICART_API_URL")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	})

	t.Run("Failure - Config File Does Not Exist", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Error(t, err)
	})

	t.Run("Failure - Malformed Config File", func(t *testing.T) {
		configPath := createTempConfigFile(t, "env: [broken")

		_, err := Load(configPath)

		assert.Error(t, err)
	})
}

func TestResolveCredentialsPath(t *testing.T) {

	t.Run("explicit path wins", func(t *testing.T) {
		cfg := &Config{CredentialsPath: "/tmp/custom.json"}

		path, err := cfg.ResolveCredentialsPath()

		require.NoError(t, err)
		assert.Equal(t, "/tmp/custom.json", path)
	})

	t.Run("defaults to the user config dir", func(t *testing.T) {
		cfg := &Config{}

		path, err := cfg.ResolveCredentialsPath()

		require.NoError(t, err)
		assert.Contains(t, path, filepath.Join("medicart", "credentials.json"))
	})
}
