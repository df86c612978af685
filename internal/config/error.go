package config

import (
	"fmt"
	"slices"
	"strings"
)

// ConfigError collects everything wrong with one config file so
// `streamdash config test` can report it in a single pass.
type ConfigError struct {
	Path    string
	Missing []string // unresolved ${VAR}; "VAR: message" for ${VAR:?message}
	Errors  []string // validation failures, each prefixed with its TOML key
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "config %s:", e.Path)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, " missing environment variables: %s;", strings.Join(e.Missing, ", "))
	}
	if len(e.Errors) > 0 {
		fmt.Fprintf(&b, " invalid %s", strings.Join(e.Keys(), ", "))
	}
	return strings.TrimSuffix(b.String(), ";")
}

// HasErrors reports whether any variable is unresolved or any key invalid.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}

// Keys returns the distinct TOML keys that failed validation, in report
// order, with any list index dropped ("dashboard.cors_origins[1]" becomes
// "dashboard.cors_origins").
func (e *ConfigError) Keys() []string {
	var keys []string
	for _, msg := range e.Errors {
		key, _, _ := strings.Cut(msg, ":")
		if i := strings.IndexByte(key, '['); i >= 0 {
			key = key[:i]
		}
		if !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Invalid reports whether key failed validation.
func (e *ConfigError) Invalid(key string) bool {
	return slices.Contains(e.Keys(), key)
}
