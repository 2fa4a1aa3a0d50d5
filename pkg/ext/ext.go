// Package ext is the catalog of bundled extension plugins, looked up
// by the names used in configuration files.
package ext

import (
	"fmt"
	"sort"

	"digital.vasic.expect/pkg/ext/chanassert"
	"digital.vasic.expect/pkg/ext/decimalassert"
	"digital.vasic.expect/pkg/ext/uuidassert"
	"digital.vasic.expect/pkg/plugin"
)

var bundles = map[string]plugin.Bundle{
	uuidassert.Bundle{}.Name():    uuidassert.Bundle{},
	decimalassert.Bundle{}.Name(): decimalassert.Bundle{},
	chanassert.Bundle{}.Name():    chanassert.Bundle{},
}

// Names returns the sorted names of every bundled extension.
func Names() []string {
	names := make([]string, 0, len(bundles))
	for name := range bundles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the bundle registered under name.
func Lookup(name string) (plugin.Bundle, error) {
	b, ok := bundles[name]
	if !ok {
		return nil, fmt.Errorf("unknown extension %q (available: %v)", name, Names())
	}
	return b, nil
}

// Resolve looks up every name in order.
func Resolve(names ...string) ([]plugin.Bundle, error) {
	out := make([]plugin.Bundle, 0, len(names))
	for _, name := range names {
		b, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
