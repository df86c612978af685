package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	err := &ConfigError{
		Path:    "/etc/streamdash/config.toml",
		Missing: []string{"DATASET", "DB: cache path"},
		Errors: []string{
			`dataset.source: must be one of csv, sqlite; got "parquet"`,
			`dashboard.cors_origins[0]: must be * or an http(s) origin, got "ftp://x"`,
			`dashboard.cors_origins[2]: must be * or an http(s) origin, got "y"`,
		},
	}

	assert.True(t, err.HasErrors())
	assert.Equal(t, []string{"dataset.source", "dashboard.cors_origins"}, err.Keys())
	assert.True(t, err.Invalid("dataset.source"))
	assert.False(t, err.Invalid("server.port"))
	assert.Equal(t,
		"config /etc/streamdash/config.toml: missing environment variables: DATASET, DB: cache path; invalid dataset.source, dashboard.cors_origins",
		err.Error())
}

func TestConfigError_MissingOnly(t *testing.T) {
	err := &ConfigError{Path: "x.toml", Missing: []string{"STREAMDASH_DATASET"}}
	assert.Equal(t, "config x.toml: missing environment variables: STREAMDASH_DATASET", err.Error())
	assert.Empty(t, err.Keys())
}

func TestConfigError_Empty(t *testing.T) {
	err := &ConfigError{Path: "x.toml"}
	assert.False(t, err.HasErrors())
	assert.Empty(t, err.Error())
}
