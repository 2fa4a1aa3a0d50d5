package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.expect/pkg/env"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, FormatNone, cfg.Log.Format)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Empty(t, cfg.Extensions)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "expect.yaml", `
log:
  level: debug
  format: json
  path: /tmp/expect-logs
  verbose: true
  redact: true
  summary: true
metrics:
  enabled: true
  namespace: suite
extensions:
  - uuid
  - decimal
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Log.Format)
	assert.Equal(t, "/tmp/expect-logs", cfg.Log.Path)
	assert.True(t, cfg.Log.Verbose)
	assert.True(t, cfg.Log.Redact)
	assert.True(t, cfg.Log.Summary)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "suite", cfg.Metrics.Namespace)
	assert.Equal(t, []string{"uuid", "decimal"}, cfg.Extensions)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "partial.yaml", "extensions: [chan]\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "expect", cfg.Metrics.Namespace)
	assert.Equal(t, []string{"chan"}, cfg.Extensions)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("/nonexistent/expect.yaml")
	assert.Error(t, err)

	path := writeFile(t, "bad.yaml", "log: [unclosed")
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")

	path = writeFile(t, "invalid.yaml", "log:\n  level: loud\n")
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "chatty" }, "unknown log level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "unknown log format"},
		{"json without path", func(c *Config) { c.Log.Format = FormatJSON }, "requires a path"},
		{"duplicate extension", func(c *Config) { c.Extensions = []string{"uuid", "uuid"} }, "duplicate extension"},
		{"summary without json", func(c *Config) { c.Log.Summary = true }, "requires the json log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	l := env.NewLoader()
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "CONSOLE")
	t.Setenv(EnvVerbose, "true")
	t.Setenv(EnvMetrics, "1")
	t.Setenv(EnvExtensions, " uuid, ,chan ")
	t.Setenv(EnvSummary, "true")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(l))

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, FormatConsole, cfg.Log.Format)
	assert.True(t, cfg.Log.Verbose)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Log.Summary)
	assert.Equal(t, []string{"uuid", "chan"}, cfg.Extensions)
}

func TestApplyEnv_BadBool(t *testing.T) {
	t.Setenv(EnvMetrics, "sometimes")
	cfg := Default()
	assert.Error(t, cfg.ApplyEnv(env.NewLoader()))
}

func TestLoadWithEnv(t *testing.T) {
	path := writeFile(t, "expect.yaml", "log:\n  level: error\nextensions: [uuid]\n")
	dotenv := writeFile(t, ".env", "EXPECT_LOG_LEVEL=debug\nEXPECT_EXTENSIONS=decimal,chan\n")

	cfg, err := LoadWithEnv(path, dotenv)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"decimal", "chan"}, cfg.Extensions)
}

func TestLoadWithEnv_NoFiles(t *testing.T) {
	cfg, err := LoadWithEnv("", "")
	require.NoError(t, err)
	assert.Equal(t, Default().Log, cfg.Log)
}

func TestLoadWithEnv_MissingDotenv(t *testing.T) {
	_, err := LoadWithEnv("", "/nonexistent/.env")
	assert.Error(t, err)
}

func TestLoadWithEnv_CollectsDotenvSecrets(t *testing.T) {
	dotenv := writeFile(t, ".env", "EXPECT_DOTENV_ONLY_TOKEN=from-dotenv-abcdef\nEXPECT_PLAIN=visible\n")

	cfg, err := LoadWithEnv("", dotenv)
	require.NoError(t, err)
	assert.Contains(t, cfg.Secrets, "from-dotenv-abcdef")
	assert.NotContains(t, cfg.Secrets, "visible")
}
