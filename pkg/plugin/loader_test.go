package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.expect/pkg/logging"
)

type testBundle struct {
	name    string
	version string
	plugins []Plugin
}

func (b testBundle) Name() string      { return b.name }
func (b testBundle) Version() string   { return b.version }
func (b testBundle) Plugins() []Plugin { return b.plugins }

func TestLoader_Load(t *testing.T) {
	r := NewRegistry()
	l := NewLoader(r, nil)

	err := l.Load(
		testBundle{"temps", "1.0", []Plugin{celsiusPlugin("celsius", Top)}},
		testBundle{"more", "2.0", []Plugin{
			celsiusPlugin("x", Bottom),
			celsiusPlugin("y", Bottom),
		}},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Count())
	assert.Equal(t, []string{"temps", "more"}, l.Loaded())
}

func TestLoader_LoadSkipsLoadedBundle(t *testing.T) {
	r := NewRegistry()
	l := NewLoader(r, logging.NullLogger{})
	b := testBundle{"temps", "1.0", []Plugin{celsiusPlugin("celsius", Top)}}

	require.NoError(t, l.Load(b))
	require.NoError(t, l.Load(b))

	assert.Equal(t, 1, r.Count())
	assert.Equal(t, []string{"temps"}, l.Loaded())
}

func TestLoader_LoadErrors(t *testing.T) {
	bad := celsiusPlugin("bad", Top)
	bad.Build = nil

	tests := []struct {
		name   string
		bundle Bundle
		errMsg string
	}{
		{"nil bundle", nil, "bundle cannot be nil"},
		{"empty name", testBundle{name: ""}, "name cannot be empty"},
		{"invalid plugin", testBundle{"broken", "1", []Plugin{bad}}, `load bundle "broken"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			l := NewLoader(r, nil)
			err := l.Load(tt.bundle)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Empty(t, l.Loaded())
			assert.Equal(t, 0, r.Count())
		})
	}
}

func TestLoader_LogsRegistrations(t *testing.T) {
	var infos []string
	logger := &recordingLogger{onInfo: func(msg string) { infos = append(infos, msg) }}

	l := NewLoader(NewRegistry(), logger)
	require.NoError(t, l.Load(testBundle{"temps", "1.0", []Plugin{
		celsiusPlugin("a", Top),
		celsiusPlugin("b", Top),
	}}))

	assert.Equal(t, []string{"plugin registered", "plugin registered"}, infos)
}

type recordingLogger struct {
	logging.NullLogger
	onInfo func(string)
}

func (r *recordingLogger) Info(msg string, _ ...logging.Field) {
	r.onInfo(msg)
}
