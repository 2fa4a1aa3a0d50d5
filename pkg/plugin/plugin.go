// Package plugin holds the append-only registry of assertion plugins
// consulted by the dispatcher before and after its built-in rules.
package plugin

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"digital.vasic.expect/pkg/assertion"
)

// Priority places a plugin before or after the built-in rules.
type Priority int

const (
	// Top plugins are consulted before every built-in rule.
	Top Priority = iota
	// Bottom plugins are consulted after every built-in rule and
	// before the fallback.
	Bottom
)

// String returns the lowercase name of the priority.
func (p Priority) String() string {
	switch p {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// ParsePriority converts "top" or "bottom" (case-insensitive) into a
// Priority.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	}
	return Top, fmt.Errorf("unknown plugin priority: %q", s)
}

// Plugin pairs a predicate with the constructor of the wrapper for
// values it accepts. Build must return a non-nil wrapper; a nil one
// is reported as an UnsupportedOperationError and the value falls
// back to the generic wrapper.
type Plugin struct {
	Name      string
	Priority  Priority
	Predicate func(value any) bool
	Build     func(value any) assertion.Wrapper
}

// FromFactory builds a plugin from a type factory.
func FromFactory(
	name string,
	priority Priority,
	f assertion.Factory,
) Plugin {
	if name == "" {
		name = f.TypeName()
	}
	return Plugin{
		Name:      name,
		Priority:  priority,
		Predicate: f.Predicate,
		Build:     f.Wrap,
	}
}

func (p Plugin) validate() error {
	if p.Predicate == nil {
		return errors.New("predicate cannot be nil")
	}
	if p.Build == nil {
		return errors.New("build cannot be nil")
	}
	if p.Priority != Top && p.Priority != Bottom {
		return fmt.Errorf("invalid priority %s", p.Priority)
	}
	return nil
}

// Registry is an ordered, append-only plugin list. It is safe for
// concurrent use. Plugins cannot be removed once registered.
type Registry struct {
	mu      sync.RWMutex
	plugins []Plugin
}

// NewRegistry creates an empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Default is the process-wide registry used by the package-level
// dispatcher.
var Default = NewRegistry()

// Register appends plugins in order. If any record is invalid none
// of them is registered. Registering the same plugin twice is
// allowed; the first registration keeps precedence.
func (r *Registry) Register(plugins ...Plugin) error {
	for i, p := range plugins {
		if err := p.validate(); err != nil {
			return fmt.Errorf(
				"register plugin %q (#%d): %w", p.Name, i, err,
			)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins = append(r.plugins, plugins...)
	return nil
}

// List returns a snapshot of every plugin in registration order.
func (r *Registry) List() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Plugin, len(r.plugins))
	copy(out, r.plugins)
	return out
}

// ByPriority returns a snapshot of the plugins with priority p in
// registration order.
func (r *Registry) ByPriority(p Priority) []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Plugin
	for _, pl := range r.plugins {
		if pl.Priority == p {
			out = append(out, pl)
		}
	}
	return out
}

// Count returns the number of registered plugins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}
