package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigPath names the environment variable that overrides discovery.
const EnvConfigPath = "STREAMDASH_CONFIG"

// ErrNoConfig is returned by Discover when STREAMDASH_CONFIG is unset and no
// search path holds a config file.
var ErrNoConfig = errors.New("no config file found")

// DefaultPath returns $XDG_CONFIG_HOME/streamdash/config.toml, falling back
// to ~/.config.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "streamdash.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "streamdash", "config.toml")
}

// SearchPaths lists the files Discover tries, in order. A streamdash.toml
// next to the dataset wins over a generic config.toml.
func SearchPaths() []string {
	return []string{
		"streamdash.toml",
		"config.toml",
		DefaultPath(),
		"/etc/streamdash/config.toml",
	}
}

// Discover returns the config file to use. STREAMDASH_CONFIG, when set, must
// name an existing file; otherwise the first existing SearchPaths entry wins.
func Discover() (string, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfigPath, envPath, err)
		}
		return envPath, nil
	}

	paths := SearchPaths()
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w (checked %s)", ErrNoConfig, strings.Join(paths, ", "))
}
