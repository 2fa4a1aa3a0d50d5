package plugin

import (
	"fmt"
	"sync"

	"digital.vasic.expect/pkg/logging"
)

// Bundle is a named, versioned set of plugins shipped by an
// extension package.
type Bundle interface {
	// Name returns the bundle's unique name.
	Name() string
	// Version returns the bundle's version string.
	Version() string
	// Plugins returns the plugins to register, in order.
	Plugins() []Plugin
}

// Loader registers bundles into a registry, at most once per bundle
// name.
type Loader struct {
	mu       sync.Mutex
	registry *Registry
	logger   logging.Logger
	loaded   []string
	seen     map[string]bool
}

// NewLoader creates a loader for registry. A nil logger discards
// output.
func NewLoader(registry *Registry, logger logging.Logger) *Loader {
	if logger == nil {
		logger = logging.NullLogger{}
	}
	return &Loader{
		registry: registry,
		logger:   logger,
		seen:     make(map[string]bool),
	}
}

// Load registers each bundle's plugins in order. A bundle whose name
// was already loaded is skipped. Loading stops at the first bundle
// the registry rejects.
func (l *Loader) Load(bundles ...Bundle) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, b := range bundles {
		if b == nil {
			return fmt.Errorf("load bundle: bundle cannot be nil")
		}
		name := b.Name()
		if name == "" {
			return fmt.Errorf("load bundle: name cannot be empty")
		}
		if l.seen[name] {
			l.logger.Debug("bundle already loaded",
				logging.StringField("bundle", name))
			continue
		}

		plugins := b.Plugins()
		if err := l.registry.Register(plugins...); err != nil {
			return fmt.Errorf("load bundle %q: %w", name, err)
		}
		l.seen[name] = true
		l.loaded = append(l.loaded, name)

		for _, p := range plugins {
			l.logger.Info("plugin registered",
				logging.StringField("bundle", name),
				logging.StringField("version", b.Version()),
				logging.StringField("plugin", p.Name),
				logging.StringField("priority", p.Priority.String()),
			)
		}
	}
	return nil
}

// Loaded returns the names of loaded bundles in load order.
func (l *Loader) Loaded() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.loaded))
	copy(out, l.loaded)
	return out
}
