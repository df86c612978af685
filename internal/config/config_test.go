package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Basic(t *testing.T) {
	dataset := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(dataset, []byte("show_id\n"), 0644))

	path := writeConfig(t, `
[server]
host = "127.0.0.1"
port = 9000
log_level = "debug"

[dataset]
path = "`+dataset+`"

[dashboard]
top_n = 5
cors_origins = ["https://dash.example.com"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, dataset, cfg.Dataset.Path)
	assert.Equal(t, SourceCSV, cfg.Dataset.Source)
	assert.Equal(t, "./data/streamdash.db", cfg.Database.Path)
	assert.Equal(t, 5, cfg.Dashboard.TopN)
	assert.Equal(t, []string{"https://dash.example.com"}, cfg.Dashboard.CORSOrigins)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := LoadWithoutValidation(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8585, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "./data/catalog.csv", cfg.Dataset.Path)
	assert.Equal(t, 10, cfg.Dashboard.TopN)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("TEST_DB_PATH", "/tmp/cache.db")

	path := writeConfig(t, `
[dataset]
source = "sqlite"

[database]
path = "${TEST_DB_PATH}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cache.db", cfg.Database.Path)
	assert.Equal(t, SourceSQLite, cfg.Dataset.Source)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	path := writeConfig(t, `
[dataset]
source = "sqlite"

[database]
path = "${STREAMDASH_TEST_UNSET_VAR}"
`)

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"STREAMDASH_TEST_UNSET_VAR"}, cfgErr.Missing)
	assert.Equal(t, path, cfgErr.Path)
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 70000

[dataset]
source = "parquet"
`)

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Empty(t, cfgErr.Missing)
	assert.True(t, containsError(cfgErr.Errors, "server.port"))
	assert.True(t, containsError(cfgErr.Errors, "dataset.source"))
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "[server\nport = ")

	_, err := LoadWithoutValidation(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadWithoutValidation_IgnoresMissing(t *testing.T) {
	path := writeConfig(t, `
[server]
host = "${STREAMDASH_TEST_UNSET_HOST}"
`)

	cfg, err := LoadWithoutValidation(path)
	require.NoError(t, err)
	assert.Equal(t, "${STREAMDASH_TEST_UNSET_HOST}", cfg.Server.Host)
}

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("SD_SET", "value")
	t.Setenv("SD_EMPTY", "")

	tests := []struct {
		name    string
		input   string
		want    string
		missing []string
	}{
		{"plain", "x = ${SD_SET}", "x = value", nil},
		{"no refs", "x = 1", "x = 1", nil},
		{"unset", "x = ${SD_UNSET}", "x = ${SD_UNSET}", []string{"SD_UNSET"}},
		{"empty is set", "x = '${SD_EMPTY}'", "x = ''", nil},
		{"default used", "x = ${SD_UNSET:-fallback}", "x = fallback", nil},
		{"default on empty", "x = ${SD_EMPTY:-fallback}", "x = fallback", nil},
		{"default ignored", "x = ${SD_SET:-fallback}", "x = value", nil},
		{"empty default", "x = '${SD_UNSET:-}'", "x = ''", nil},
		{"required set", "x = ${SD_SET:?needed}", "x = value", nil},
		{"required unset", "x = ${SD_UNSET:?set the dataset}", "x = ${SD_UNSET:?set the dataset}", []string{"SD_UNSET: set the dataset"}},
		{"multiple", "${SD_SET}/${SD_UNSET}/${SD_OTHER}", "value/${SD_UNSET}/${SD_OTHER}", []string{"SD_UNSET", "SD_OTHER"}},
		{"not a reference", "x = $SD_SET", "x = $SD_SET", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, missing := substituteEnvVars(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.missing, missing)
		})
	}
}
