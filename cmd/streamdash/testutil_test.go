package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `show_id,category,title,director,cast,country,release_date,rating,duration,type,description
s1,Movie,Monsoon,Mira Nair,,"United States, India","September 25, 2021",TV-MA,90 min,"Dramas, International Movies",
s2,TV Show,Rivers,,,India,"March 1, 2020",TV-14,2 Seasons,Docuseries,
s3,Movie,Laughs,,,United States,,PG,85 min,Comedies,
`

// testEnv is a temp directory holding a catalog CSV and a config pointing at it.
type testEnv struct {
	dir     string
	csvPath string
	dbPath  string
	cfgPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := &testEnv{
		dir:     dir,
		csvPath: filepath.Join(dir, "catalog.csv"),
		dbPath:  filepath.Join(dir, "streamdash.db"),
		cfgPath: filepath.Join(dir, "config.toml"),
	}
	require.NoError(t, os.WriteFile(env.csvPath, []byte(testCSV), 0644))
	env.writeConfig(t, "csv")
	return env
}

func (e *testEnv) writeConfig(t *testing.T, source string) {
	t.Helper()
	content := "[dataset]\npath = \"" + e.csvPath + "\"\nsource = \"" + source + "\"\n\n[database]\npath = \"" + e.dbPath + "\"\n"
	require.NoError(t, os.WriteFile(e.cfgPath, []byte(content), 0644))
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// mockServer creates an httptest.Server that checks the request path and
// responds with v as JSON.
func mockServer(t *testing.T, path string, code int, v any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, path, r.URL.Path, "unexpected request path")
		assert.Equal(t, http.MethodGet, r.Method, "unexpected request method")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		if err := json.NewEncoder(w).Encode(v); err != nil {
			t.Errorf("failed to encode JSON response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}
