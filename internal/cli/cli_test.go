package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/atlas/pkg/types"
)

// testEnv isolates one CLI invocation sequence in temporary directories.
type testEnv struct {
	t         *testing.T
	configDir string
	dataDir   string
}

// result captures the outcome of a single Run.
type result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("ATLAS_BACKEND", "")
	t.Setenv("ATLAS_LOG_LEVEL", "")
	t.Setenv("ATLAS_LOG_FORMAT", "")
	t.Setenv("ATLAS_DATA_DIR", "")
	t.Setenv("ATLAS_CONFIG_DIR", "")
	root := t.TempDir()
	return &testEnv{
		t:         t,
		configDir: filepath.Join(root, "config"),
		dataDir:   filepath.Join(root, "data"),
	}
}

func (e *testEnv) runWithInput(input string, args ...string) result {
	e.t.Helper()
	var stdout, stderr bytes.Buffer
	full := append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...)
	code := Run(strings.NewReader(input), &stdout, &stderr, full)
	return result{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: code}
}

func (e *testEnv) run(args ...string) result {
	e.t.Helper()
	return e.runWithInput("", args...)
}

func (e *testEnv) mustRun(args ...string) result {
	e.t.Helper()
	r := e.run(args...)
	require.Equal(e.t, exitSuccess, r.ExitCode, "atlas %v failed: %s", args, r.Stderr)
	return r
}

func (e *testEnv) add(name, population, area, continent string) {
	e.t.Helper()
	e.mustRun("add", "--name", name, "--population", population, "--area", area, "--continent", continent)
}

func (e *testEnv) seed() {
	e.t.Helper()
	e.add("Perú", "33715471", "1285216", "América")
	e.add("España", "47615034", "505990", "Europa")
	e.add("Japón", "124516650", "377975", "Asia")
}

func parseJSON[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(s), &v), "output: %s", s)
	return v
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	r := env.mustRun("version")
	assert.Equal(t, "atlas v"+Version+"\nmodule: "+modulePath+"\n", r.Stdout)
}

func TestInit_CreatesConfigAndSnapshot(t *testing.T) {
	env := newTestEnv(t)

	r := env.mustRun("init")
	assert.Contains(t, r.Stdout, "Catalog initialized")
	assert.Contains(t, r.Stdout, "(0 countries)")

	assert.FileExists(t, filepath.Join(env.configDir, "config.yaml"))
	data, err := os.ReadFile(filepath.Join(env.dataDir, types.DefaultCSVFile))
	require.NoError(t, err)
	assert.Equal(t, "name,population,area,continent\n", string(data))
}

func TestInit_SQLiteBackendPersistsChoice(t *testing.T) {
	env := newTestEnv(t)

	env.mustRun("init", "--backend", "sqlite")
	assert.FileExists(t, filepath.Join(env.dataDir, types.DefaultSQLiteFile))

	cfg, err := os.ReadFile(filepath.Join(env.configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "backend: sqlite")

	// Later commands pick the backend up from config.yaml.
	env.add("Chile", "19116209", "756102", "América")
	r := env.mustRun("search", "chile")
	assert.Contains(t, r.Stdout, "Chile | population: 19116209")
	assert.NoFileExists(t, filepath.Join(env.dataDir, types.DefaultCSVFile))
}

func TestInit_UserDataDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout only applies on linux")
	}
	env := newTestEnv(t)
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)

	var stdout, stderr bytes.Buffer
	code := Run(strings.NewReader(""), &stdout, &stderr, []string{"--config-dir", env.configDir, "init", "--user"})
	require.Equal(t, exitSuccess, code, stderr.String())

	assert.FileExists(t, filepath.Join(xdg, "atlas", types.DefaultCSVFile))
	cfg, err := os.ReadFile(filepath.Join(env.configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "data_dir: "+filepath.Join(xdg, "atlas"))
}

func TestInit_UnknownBackend(t *testing.T) {
	env := newTestEnv(t)
	r := env.run("init", "--backend", "xml")
	assert.Equal(t, exitUserError, r.ExitCode)
	assert.Contains(t, r.Stderr, "unknown backend")
}

func TestAdd_PersistsSnapshot(t *testing.T) {
	env := newTestEnv(t)

	r := env.mustRun("add", "--name", "  Perú ", "--population", "33715471", "--area", "1285216", "--continent", "América")
	assert.Equal(t, "Added Perú\n", r.Stdout)

	data, err := os.ReadFile(filepath.Join(env.dataDir, types.DefaultCSVFile))
	require.NoError(t, err)
	assert.Equal(t, "name,population,area,continent\nPerú,33715471,1285216,América\n", string(data))
}

func TestAdd_JSON(t *testing.T) {
	env := newTestEnv(t)
	r := env.mustRun("--json", "add", "--name", "Chile", "--population", "19116209", "--area", "756102", "--continent", "América")

	got := parseJSON[types.Country](t, r.Stdout)
	assert.Equal(t, types.Country{Name: "Chile", Population: 19116209, Area: 756102, Continent: "América"}, got)
}

func TestAdd_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{"duplicate ignoring accents", []string{"--name", "PERU", "--population", "1", "--area", "1", "--continent", "América"}, "already exists"},
		{"negative population", []string{"--name", "Chile", "--population", "-5", "--area", "1", "--continent", "América"}, "population"},
		{"non-numeric area", []string{"--name", "Chile", "--population", "5", "--area", "big", "--continent", "América"}, "area"},
		{"empty continent", []string{"--name", "Chile", "--population", "5", "--area", "1", "--continent", "  "}, "continent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.add("Perú", "33715471", "1285216", "América")

			r := env.run(append([]string{"add"}, tt.args...)...)
			assert.Equal(t, exitUserError, r.ExitCode)
			assert.Contains(t, r.Stderr, tt.wantStderr)

			list := env.mustRun("list")
			assert.Equal(t, 1, strings.Count(list.Stdout, "\n"), "catalog must be unchanged")
		})
	}
}

func TestAdd_MissingFlag(t *testing.T) {
	env := newTestEnv(t)
	r := env.run("add", "--name", "Chile")
	assert.Equal(t, exitUserError, r.ExitCode)
	assert.Contains(t, r.Stderr, "required flag")
}

func TestSearch(t *testing.T) {
	env := newTestEnv(t)
	env.seed()

	r := env.mustRun("search", "  ESPANA ")
	assert.Equal(t, "España | population: 47615034 | area: 505990 | continent: Europa\n", r.Stdout)

	r = env.mustRun("search", "zz")
	assert.Equal(t, "No country matches \"zz\".\n", r.Stdout)

	r = env.mustRun("--json", "search", "zz")
	assert.Empty(t, parseJSON[[]types.Country](t, r.Stdout))
}

func TestUpdate(t *testing.T) {
	env := newTestEnv(t)
	env.seed()

	r := env.mustRun("update", "japon", "--population", "124000000", "--area", "378000")
	assert.Equal(t, "Updated Japón\n", r.Stdout)

	r = env.mustRun("--json", "search", "japón")
	got := parseJSON[[]types.Country](t, r.Stdout)
	require.Len(t, got, 1)
	assert.Equal(t, int64(124000000), got[0].Population)
	assert.Equal(t, int64(378000), got[0].Area)
}

func TestUpdate_Errors(t *testing.T) {
	env := newTestEnv(t)
	env.seed()

	r := env.run("update", "atlantis", "--population", "1", "--area", "1")
	assert.Equal(t, exitUserError, r.ExitCode)
	assert.Contains(t, r.Stderr, "no country matches")

	r = env.run("update", "peru", "--population", "x", "--area", "1")
	assert.Equal(t, exitUserError, r.ExitCode)

	r = env.mustRun("search", "peru")
	assert.Contains(t, r.Stdout, "population: 33715471")
}

func TestList(t *testing.T) {
	env := newTestEnv(t)
	env.seed()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"catalog order", nil, []string{"Perú", "España", "Japón"}},
		{"by name", []string{"--sort", "name"}, []string{"España", "Japón", "Perú"}},
		{"by population", []string{"--sort", "population"}, []string{"Perú", "España", "Japón"}},
		{"area descending", []string{"--sort", "area-desc"}, []string{"Perú", "España", "Japón"}},
		{"area ascending", []string{"--sort", "area-asc"}, []string{"Japón", "España", "Perú"}},
		{"continent", []string{"--continent", "america"}, []string{"Perú"}},
		{"population range", []string{"--min-population", "40000000", "--max-population", "200000000"}, []string{"España", "Japón"}},
		{"area range and sort", []string{"--min-area", "0", "--max-area", "600000", "--sort", "area-asc"}, []string{"Japón", "España"}},
		{"combined filters", []string{"--continent", "asia", "--min-area", "0", "--max-area", "600000"}, []string{"Japón"}},
		{"inverted range", []string{"--min-population", "10", "--max-population", "1"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := env.mustRun(append([]string{"--json", "list"}, tt.args...)...)
			got := parseJSON[[]types.Country](t, r.Stdout)
			names := make([]string, 0, len(got))
			for _, c := range got {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestList_Errors(t *testing.T) {
	env := newTestEnv(t)
	env.seed()

	r := env.run("list", "--sort", "size")
	assert.Equal(t, exitUserError, r.ExitCode)
	assert.Contains(t, r.Stderr, "unknown sort mode")

	r = env.run("list", "--min-area", "5")
	assert.Equal(t, exitUserError, r.ExitCode)
}

func TestStats(t *testing.T) {
	env := newTestEnv(t)

	r := env.run("stats")
	assert.Equal(t, exitUserError, r.ExitCode)
	assert.Contains(t, r.Stderr, "catalog is empty")

	env.seed()
	r = env.mustRun("stats")
	assert.Contains(t, r.Stdout, "Most populous: Japón")
	assert.Contains(t, r.Stdout, "Least populous: Perú")
	assert.Contains(t, r.Stdout, "  Asia: 1\n")

	r = env.mustRun("--json", "stats")
	stats := parseJSON[types.Stats](t, r.Stdout)
	assert.Equal(t, "Japón", stats.MostPopulous.Name)
	assert.Equal(t, map[string]int{"América": 1, "Europa": 1, "Asia": 1}, stats.ContinentCounts)
}

func TestMenu_ReadsScriptedInput(t *testing.T) {
	env := newTestEnv(t)
	env.seed()

	r := env.runWithInput("3\nperu\n0\n")
	require.Equal(t, exitSuccess, r.ExitCode, r.Stderr)
	assert.Contains(t, r.Stdout, "Perú | population: 33715471")
	assert.Contains(t, r.Stdout, "Goodbye.")
}

func TestCorruptConfigIsSystemError(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.MkdirAll(env.configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(env.configDir, "config.yaml"), []byte("backend: [unclosed\n"), 0o644))

	r := env.run("list")
	assert.Equal(t, exitSysError, r.ExitCode)
}

func TestUnreadableDataDirIsSystemError(t *testing.T) {
	env := newTestEnv(t)
	// A regular file where the data directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	env.dataDir = filepath.Join(blocker, "data")

	r := env.run("list")
	assert.Equal(t, exitSysError, r.ExitCode)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitUserError, exitCode(types.ErrValidation))
	assert.Equal(t, exitSysError, exitCode(&sysError{os.ErrPermission}))
	assert.Equal(t, exitSysError, exitCode(&types.IOError{Op: "save", Path: "x", Err: os.ErrPermission}))
}
