package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default_config.toml
var defaultConfig string

// ErrExists is returned when a write would replace an existing config.
var ErrExists = errors.New("config file already exists")

// WriteDefault writes the commented example config, with its ${STREAMDASH_*}
// placeholders, to path.
func WriteDefault(path string, overwrite bool) error {
	f, err := create(path, overwrite)
	if err != nil {
		return err
	}
	_, err = f.WriteString(defaultConfig)
	return errors.Join(err, f.Close())
}

// Write serializes c as TOML to path.
func (c *Config) Write(path string, overwrite bool) error {
	f, err := create(path, overwrite)
	if err != nil {
		return err
	}
	err = toml.NewEncoder(f).Encode(c)
	return errors.Join(err, f.Close())
}

// create opens path for writing, creating parent directories. Unless
// overwrite is set an existing file is left alone and ErrExists returned.
func create(path string, overwrite bool) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0644)
	if errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrExists)
	}
	return f, err
}
