package expect

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.expect/pkg/assertion"
	"digital.vasic.expect/pkg/config"
	"digital.vasic.expect/pkg/ext/chanassert"
	"digital.vasic.expect/pkg/ext/decimalassert"
	"digital.vasic.expect/pkg/ext/uuidassert"
	"digital.vasic.expect/pkg/logging"
	"digital.vasic.expect/pkg/metrics"
)

func TestNewFromConfig_Default(t *testing.T) {
	e, err := NewFromConfig(config.Default(), prometheus.NewRegistry())
	require.NoError(t, err)
	defer e.Close()

	assert.IsType(t, logging.NullLogger{}, e.Logger())
	assert.IsType(t, metrics.NoopMetrics{}, e.metrics)
	assert.Equal(t, 0, e.Registry().Count())
}

func TestNewFromConfig_Extensions(t *testing.T) {
	cfg := config.Default()
	cfg.Extensions = []string{"uuid", "decimal", "chan"}

	e, err := NewFromConfig(cfg, nil)
	require.NoError(t, err)
	defer e.Close()

	assert.Equal(t, 3, e.Registry().Count())
	assert.IsType(t, &uuidassert.UUIDAssertion{}, e.Expect(uuid.New()))
	assert.IsType(t, &decimalassert.DecimalAssertion{}, e.Expect(decimal.NewFromInt(1)))
	assert.IsType(t, &chanassert.ChannelAssertion{}, e.Expect(make(chan int)))
	assert.IsType(t, &assertion.ArrayAssertion{}, e.Expect([16]byte{}))
}

func TestNewFromConfig_UnknownExtension(t *testing.T) {
	cfg := config.Default()
	cfg.Extensions = []string{"money"}

	_, err := NewFromConfig(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load extensions")
}

func TestNewFromConfig_Invalid(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "loud"

	_, err := NewFromConfig(cfg, nil)
	assert.Error(t, err)
}

func TestNewFromConfig_Metrics(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Namespace = "suite"
	reg := prometheus.NewRegistry()

	e, err := NewFromConfig(cfg, reg, WithFailHandler(func(error) {}))
	require.NoError(t, err)
	defer e.Close()

	e.Expect(1).(*assertion.NumberAssertion).ToBeNegative()
	e.Expect("a")

	pm, ok := e.metrics.(*metrics.PrometheusMetrics)
	require.True(t, ok)
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.Dispatches().WithLabelValues("number")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.Dispatches().WithLabelValues("string")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.Failures().WithLabelValues("AssertionError")))
}

func TestNewFromConfig_JSONLogs(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Log.Format = config.FormatJSON
	cfg.Log.Path = dir
	cfg.Log.Level = "debug"

	e, err := NewFromConfig(cfg, nil, WithFailHandler(func(error) {}))
	require.NoError(t, err)

	e.Expect("abc").(*assertion.StringAssertion).ToStartWith("z")
	require.NoError(t, e.Close())

	mainLog, err := os.ReadFile(filepath.Join(dir, "expect.log"))
	require.NoError(t, err)
	assert.Contains(t, string(mainLog), "value dispatched")

	failures, err := os.ReadFile(filepath.Join(dir, "failures.log"))
	require.NoError(t, err)
	assert.Contains(t, string(failures), `"kind":"AssertionError"`)
	assert.Contains(t, string(failures), `"wrapper":"string"`)
}

func TestNewFromConfig_RedactsSecrets(t *testing.T) {
	const secret = "tok-0123456789abcdef"
	t.Setenv("EXPECT_TEST_API_TOKEN", secret)

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Log.Format = config.FormatJSON
	cfg.Log.Path = dir
	cfg.Log.Redact = true

	e, err := NewFromConfig(cfg, nil, WithFailHandler(func(error) {}))
	require.NoError(t, err)

	e.Expect(secret).(*assertion.StringAssertion).ToBeEmpty()
	require.NoError(t, e.Close())

	failures, err := os.ReadFile(filepath.Join(dir, "failures.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(failures), secret)
	assert.True(t, strings.Contains(string(failures), "tok-****"))
}

func TestNewFromConfig_WritesFailureSummary(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Log.Format = config.FormatJSON
	cfg.Log.Path = dir
	cfg.Log.Summary = true

	e, err := NewFromConfig(cfg, nil, WithFailHandler(func(error) {}))
	require.NoError(t, err)

	e.Expect(3).(*assertion.NumberAssertion).ToBeZero()
	e.Expect(4).(*assertion.NumberAssertion).ToBeNegative()
	require.NoError(t, e.Close())

	data, err := os.ReadFile(filepath.Join(dir, "reports", "latest_summary.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total_failures": 2`)
	assert.Contains(t, string(data), `"key": "number"`)
}

func TestNewFromConfig_RedactsDotenvSecrets(t *testing.T) {
	const secret = "dotenv-only-0123456789"
	dir := t.TempDir()
	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("EXPECT_TEST_SERVICE_PASSWORD="+secret+"\n"), 0644))

	cfg, err := config.LoadWithEnv("", dotenv)
	require.NoError(t, err)
	cfg.Log.Format = config.FormatJSON
	cfg.Log.Path = dir
	cfg.Log.Redact = true

	e, err := NewFromConfig(cfg, nil, WithFailHandler(func(error) {}))
	require.NoError(t, err)

	e.Expect(secret).(*assertion.StringAssertion).ToBeEmpty()
	require.NoError(t, e.Close())

	failures, err := os.ReadFile(filepath.Join(dir, "failures.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(failures), secret)
	assert.Contains(t, string(failures), "dote****")
}
