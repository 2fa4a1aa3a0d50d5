package ext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.expect/pkg/plugin"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"chan", "decimal", "uuid"}, Names())
}

func TestLookup(t *testing.T) {
	b, err := Lookup("uuid")
	require.NoError(t, err)
	assert.Equal(t, "uuid", b.Name())
	require.Len(t, b.Plugins(), 1)
	assert.Equal(t, plugin.Top, b.Plugins()[0].Priority)

	_, err = Lookup("money")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"money"`)
}

func TestResolve(t *testing.T) {
	bundles, err := Resolve("chan", "decimal")
	require.NoError(t, err)
	require.Len(t, bundles, 2)
	assert.Equal(t, "chan", bundles[0].Name())
	assert.Equal(t, plugin.Bottom, bundles[0].Plugins()[0].Priority)
	assert.Equal(t, "decimal", bundles[1].Name())

	_, err = Resolve("uuid", "nope")
	assert.Error(t, err)
}

func TestBundles_LoadIntoRegistry(t *testing.T) {
	bundles, err := Resolve(Names()...)
	require.NoError(t, err)

	r := plugin.NewRegistry()
	require.NoError(t, plugin.NewLoader(r, nil).Load(bundles...))
	assert.Equal(t, 3, r.Count())
	assert.Len(t, r.ByPriority(plugin.Top), 2)
	assert.Len(t, r.ByPriority(plugin.Bottom), 1)
}
