package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteDefault(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	for _, section := range []string{"[server]", "[dataset]", "[database]", "[dashboard]"} {
		assert.Contains(t, content, section)
	}
}

func TestWriteDefault_KeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[dataset]\npath = \"mine.csv\"\n"), 0644))

	err := WriteDefault(path, false)
	assert.ErrorIs(t, err, ErrExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mine.csv")

	require.NoError(t, WriteDefault(path, true))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "mine.csv")
}

func TestConfig_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "config.toml")

	cfg := Default()
	cfg.Server.Host = "10.0.0.5"
	cfg.Server.Port = 9090
	cfg.Dataset.Source = SourceSQLite
	cfg.Dashboard.CORSOrigins = []string{"http://localhost:5173"}
	require.NoError(t, cfg.Write(path, false))

	got, err := LoadWithoutValidation(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	assert.ErrorIs(t, cfg.Write(path, false), ErrExists)
}

func TestWriteDefault_LoadsWithEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path, false))

	t.Setenv("STREAMDASH_HOST", "192.168.1.20")
	t.Setenv("STREAMDASH_DATASET", "/srv/catalog.csv")

	cfg, err := LoadWithoutValidation(path)
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.20", cfg.Server.Host)
	assert.Equal(t, 8585, cfg.Server.Port)
	assert.Equal(t, "/srv/catalog.csv", cfg.Dataset.Path)
	assert.Equal(t, SourceCSV, cfg.Dataset.Source)
	assert.Equal(t, 10, cfg.Dashboard.TopN)
}
