// Package env reads .env files and the process environment for
// configuration overrides.
package env

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Loader defines the interface for environment variable lookup.
type Loader interface {
	// Load reads environment variables from a .env file.
	Load(filepath string) error
	// Get retrieves an environment variable value.
	Get(key string) string
	// Lookup retrieves a value and reports whether it is set.
	Lookup(key string) (string, bool)
	// GetRequired retrieves a required environment variable or returns error.
	GetRequired(key string) (string, error)
	// GetWithDefault retrieves an environment variable with a default fallback.
	GetWithDefault(key, defaultValue string) string
	// GetBool parses a boolean variable.
	GetBool(key string) (value, ok bool, err error)
	// Set sets an environment variable.
	Set(key, value string) error
	// All returns all loaded environment variables.
	All() map[string]string
}

// DefaultLoader implements Loader with .env file support. The
// process environment takes precedence over file values.
type DefaultLoader struct {
	mu     sync.RWMutex
	vars   map[string]string
	loaded bool
}

// NewLoader creates an empty DefaultLoader.
func NewLoader() *DefaultLoader {
	return &DefaultLoader{vars: make(map[string]string)}
}

func (l *DefaultLoader) Load(filepath string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf("open env file %s: %w", filepath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)
		l.vars[key] = value
	}

	l.loaded = true
	return scanner.Err()
}

func (l *DefaultLoader) Lookup(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok {
		return v, true
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.vars[key]
	return v, ok
}

func (l *DefaultLoader) Get(key string) string {
	v, _ := l.Lookup(key)
	return v
}

func (l *DefaultLoader) GetRequired(key string) (string, error) {
	v := l.Get(key)
	if v == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return v, nil
}

func (l *DefaultLoader) GetWithDefault(key, defaultValue string) string {
	if v := l.Get(key); v != "" {
		return v
	}
	return defaultValue
}

// GetBool parses key with strconv.ParseBool. ok is false when the
// variable is unset or empty.
func (l *DefaultLoader) GetBool(key string) (bool, bool, error) {
	v := strings.TrimSpace(l.Get(key))
	if v == "" {
		return false, false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false, fmt.Errorf("environment variable %s: %w", key, err)
	}
	return b, true, nil
}

func (l *DefaultLoader) Set(key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.vars[key] = value
	return os.Setenv(key, value)
}

func (l *DefaultLoader) All() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make(map[string]string, len(l.vars))
	for k, v := range l.vars {
		result[k] = v
	}
	return result
}
