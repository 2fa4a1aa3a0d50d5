package expect

import (
	"fmt"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	"digital.vasic.expect/pkg/config"
	"digital.vasic.expect/pkg/env"
	"digital.vasic.expect/pkg/ext"
	"digital.vasic.expect/pkg/logging"
	"digital.vasic.expect/pkg/metrics"
	"digital.vasic.expect/pkg/plugin"
	"digital.vasic.expect/pkg/report"
)

// NewFromConfig builds an Expector from cfg with a fresh registry
// holding the configured extensions. Metrics, when enabled, are
// registered on reg, or on prometheus.DefaultRegisterer when reg is
// nil. opts are applied last.
func NewFromConfig(
	cfg config.Config,
	reg prometheus.Registerer,
	opts ...Option,
) (*Expector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	var recorder metrics.Recorder = metrics.NoopMetrics{}
	if cfg.Metrics.Enabled {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		pm, err := metrics.NewPrometheusMetrics(reg, cfg.Metrics.Namespace)
		if err != nil {
			_ = logger.Close()
			return nil, err
		}
		recorder = pm
	}

	registry := plugin.NewRegistry()
	bundles, err := ext.Resolve(cfg.Extensions...)
	if err == nil {
		err = plugin.NewLoader(registry, logger).Load(bundles...)
	}
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("failed to load extensions: %w", err)
	}

	base := []Option{
		WithRegistry(registry),
		WithLogger(logger),
		WithMetrics(recorder),
	}
	e := New(append(base, opts...)...)
	if cfg.Log.Summary {
		e.onClose = func() error { return writeSummary(cfg.Log.Path) }
	}
	return e, nil
}

// writeSummary reads the failure log under dir and saves its summary
// to dir/reports.
func writeSummary(dir string) error {
	failures, err := report.ReadFailureFile(filepath.Join(dir, "failures.log"))
	if err != nil {
		return err
	}
	_, err = report.SaveSummary(
		report.BuildSummary(failures), filepath.Join(dir, "reports"),
	)
	return err
}

func newLogger(c config.Config) (logging.Logger, error) {
	cfg := c.Log
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var logger logging.Logger
	switch cfg.Format {
	case config.FormatConsole:
		logger = logging.NewConsoleLogger(cfg.Verbose || level == logging.LevelDebug)
	case config.FormatJSON:
		logger, err = logging.NewJSONLogger(logging.LoggerConfig{
			OutputPath: filepath.Join(cfg.Path, "expect.log"),
			FailureLog: filepath.Join(cfg.Path, "failures.log"),
			Level:      level,
			Verbose:    cfg.Verbose || level == logging.LevelDebug,
		})
		if err != nil {
			return nil, err
		}
	default:
		return logging.NullLogger{}, nil
	}

	if cfg.Redact {
		secrets := append(env.Secrets(env.NewLoader()), c.Secrets...)
		logger = logging.NewRedactingLogger(logger, secrets...)
	}
	return logger, nil
}

// Close releases the Expector's logger, then writes the failure
// summary when one was configured.
func (e *Expector) Close() error {
	if err := e.logger.Close(); err != nil {
		return err
	}
	if e.onClose != nil {
		return e.onClose()
	}
	return nil
}
