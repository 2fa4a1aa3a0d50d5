// Package config loads engine configuration from YAML with .env and
// process-environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"digital.vasic.expect/pkg/env"
	"digital.vasic.expect/pkg/logging"
)

// Environment variables that override file values.
const (
	EnvLogLevel   = "EXPECT_LOG_LEVEL"
	EnvLogFormat  = "EXPECT_LOG_FORMAT"
	EnvLogPath    = "EXPECT_LOG_PATH"
	EnvVerbose    = "EXPECT_VERBOSE"
	EnvMetrics    = "EXPECT_METRICS"
	EnvExtensions = "EXPECT_EXTENSIONS"
	EnvSummary    = "EXPECT_SUMMARY"
)

// Log formats.
const (
	FormatNone    = "none"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the engine configuration.
type Config struct {
	Log        LogConfig     `yaml:"log"`
	Metrics    MetricsConfig `yaml:"metrics"`
	Extensions []string      `yaml:"extensions,omitempty"`

	// Secrets holds the secret-looking values LoadWithEnv found in
	// the .env file and the process environment. It is never read
	// from or written to YAML.
	Secrets []string `yaml:"-"`
}

// LogConfig selects the logger an Expector is built with. Path is
// a directory for the json format. Redact masks secret-looking
// environment values in every log line. Summary writes a failure
// summary under Path/reports when the Expector is closed.
type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Path    string `yaml:"path,omitempty"`
	Verbose bool   `yaml:"verbose"`
	Redact  bool   `yaml:"redact"`
	Summary bool   `yaml:"summary"`
}

// MetricsConfig enables Prometheus counters.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace,omitempty"`
}

// Default returns the configuration used when no file is given:
// no logging, no metrics, no extensions.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: FormatNone,
		},
		Metrics: MetricsConfig{Namespace: "expect"},
	}
}

// Load reads a YAML config file over Default. Fields absent from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf(
			"failed to read config file %s: %w", path, err,
		)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf(
			"failed to parse config from %s: %w", path, err,
		)
	}

	return cfg, cfg.Validate()
}

// LoadWithEnv loads path (skipped when empty), then the .env file at
// dotenv (skipped when empty), then applies environment overrides.
func LoadWithEnv(path, dotenv string) (Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return cfg, err
		}
	}

	loader := env.NewLoader()
	if dotenv != "" {
		if err := loader.Load(dotenv); err != nil {
			return cfg, err
		}
	}

	if err := cfg.ApplyEnv(loader); err != nil {
		return cfg, err
	}
	cfg.Secrets = env.Secrets(loader)
	return cfg, cfg.Validate()
}

// ApplyEnv overrides cfg with the EXPECT_* variables l knows about.
func (c *Config) ApplyEnv(l env.Loader) error {
	if v, ok := l.Lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := l.Lookup(EnvLogFormat); ok && v != "" {
		c.Log.Format = strings.ToLower(v)
	}
	if v, ok := l.Lookup(EnvLogPath); ok && v != "" {
		c.Log.Path = v
	}

	verbose, ok, err := l.GetBool(EnvVerbose)
	if err != nil {
		return err
	}
	if ok {
		c.Log.Verbose = verbose
	}

	summary, ok, err := l.GetBool(EnvSummary)
	if err != nil {
		return err
	}
	if ok {
		c.Log.Summary = summary
	}

	enabled, ok, err := l.GetBool(EnvMetrics)
	if err != nil {
		return err
	}
	if ok {
		c.Metrics.Enabled = enabled
	}

	if v, ok := l.Lookup(EnvExtensions); ok {
		c.Extensions = splitList(v)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	switch c.Log.Format {
	case FormatNone, FormatConsole, "":
	case FormatJSON:
		if c.Log.Path == "" {
			errs = append(errs, errors.New("json log format requires a path"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown log format: %s", c.Log.Format))
	}
	if c.Log.Summary && c.Log.Format != FormatJSON {
		errs = append(errs, errors.New("failure summary requires the json log format"))
	}

	seen := make(map[string]bool)
	for _, ext := range c.Extensions {
		if seen[ext] {
			errs = append(errs, fmt.Errorf("duplicate extension: %s", ext))
		}
		seen[ext] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
