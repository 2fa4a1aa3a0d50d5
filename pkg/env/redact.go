package env

import (
	"os"
	"sort"
	"strings"
)

var secretMarkers = []string{
	"API_KEY", "APIKEY", "TOKEN", "SECRET", "PASSWORD", "PASSWD",
	"CREDENTIAL", "PRIVATE_KEY",
}

// IsSecretKey reports whether an environment variable name looks
// like it holds a credential.
func IsSecretKey(key string) bool {
	upper := strings.ToUpper(key)
	for _, m := range secretMarkers {
		if strings.Contains(upper, m) {
			return true
		}
	}
	return false
}

// Secrets returns the sorted, de-duplicated values of every secret
// looking variable known to l, from both the loaded file and the
// process environment. Empty values are skipped.
func Secrets(l Loader) []string {
	keys := make(map[string]bool)
	for k := range l.All() {
		keys[k] = true
	}
	for _, kv := range os.Environ() {
		if k, _, ok := strings.Cut(kv, "="); ok {
			keys[k] = true
		}
	}

	seen := make(map[string]bool)
	var out []string
	for k := range keys {
		if !IsSecretKey(k) {
			continue
		}
		v := l.Get(k)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
