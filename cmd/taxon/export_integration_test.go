package main_test

import (
	"database/sql"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/taxon"
	"github.com/jward/taxon/internal/universe"
)

// buildBinary compiles the taxon binary and returns the path.
// The binary is placed in t.TempDir() so it's cleaned up automatically.
func buildBinary(t *testing.T) string {
	t.Helper()
	binName := "taxon"
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	bin := filepath.Join(t.TempDir(), binName)
	cmd := exec.Command("go", "build", "-o", bin, ".")
	cmd.Dir = filepath.Join(projectRoot(t), "cmd", "taxon")
	cmd.Env = append(os.Environ(), "CGO_ENABLED=1")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "build failed: %s", string(out))
	return bin
}

// projectRoot returns the root of the taxon project by walking up from
// the test file's directory to find go.mod.
func projectRoot(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller failed")
	dir := filepath.Dir(filename)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, parent, dir, "could not find project root")
		dir = parent
	}
}

// openDB opens the SQLite database at the given path for verification.
func openDB(t *testing.T, dbPath string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// tableCount returns the number of rows in the named table.
func tableCount(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
	require.NoError(t, err)
	return count
}

// expectedCounts runs the same inspection the binary runs (default bounds)
// and returns the row counts a complete export must produce.
func expectedCounts(t *testing.T) (entries, methods, supertypes int) {
	t.Helper()
	e := taxon.New(universe.Builtin())
	descs := e.DescribeAll(e.Inspect())
	require.NotEmpty(t, descs)
	for _, d := range descs {
		entries++
		methods += len(d.PublicMethods) + len(d.SpecialMethods)
		supertypes += len(d.Supertypes)
	}
	return entries, methods, supertypes
}

func TestExport_CreatesSnapshot(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	bin := buildBinary(t)
	workDir := t.TempDir()

	cmd := exec.Command(bin, "export")
	cmd.Dir = workDir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "export failed: %s", string(out))
	assert.Contains(t, string(out), "Exported snapshot")

	// Verify the default database location.
	dbPath := filepath.Join(workDir, ".taxon", "snapshots.db")
	_, err = os.Stat(dbPath)
	require.NoError(t, err, ".taxon/snapshots.db should exist")

	// Every description lands in SQLite with its methods and supertypes.
	wantEntries, wantMethods, wantSupertypes := expectedCounts(t)
	db := openDB(t, dbPath)
	assert.Equal(t, 1, tableCount(t, db, "snapshots"))
	assert.Equal(t, wantEntries, tableCount(t, db, "entries"))
	assert.Equal(t, wantMethods, tableCount(t, db, "entry_methods"))
	assert.Equal(t, wantSupertypes, tableCount(t, db, "entry_supertypes"))
}

func TestExport_CustomDBPath(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	bin := buildBinary(t)
	workDir := t.TempDir()
	customDB := filepath.Join(t.TempDir(), "custom.db")

	cmd := exec.Command(bin, "export", "--db", customDB)
	cmd.Dir = workDir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "export with --db failed: %s", string(out))

	// Custom DB should exist.
	_, err = os.Stat(customDB)
	require.NoError(t, err, "custom DB should exist at %s", customDB)

	// Default location should NOT be created when --db is set.
	_, err = os.Stat(filepath.Join(workDir, ".taxon", "snapshots.db"))
	assert.True(t, os.IsNotExist(err), ".taxon/snapshots.db should not be created when --db is set")
}

func TestSnapshots_ListsExports(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	bin := buildBinary(t)
	workDir := t.TempDir()

	for i := 0; i < 2; i++ {
		cmd := exec.Command(bin, "export")
		cmd.Dir = workDir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "export %d failed: %s", i+1, string(out))
	}

	cmd := exec.Command(bin, "snapshots", "--format", "json")
	cmd.Dir = workDir
	out, err := cmd.Output()
	require.NoError(t, err, "snapshots failed")

	var envelope struct {
		Command string `json:"command"`
		Results []struct {
			ID        string `json:"id"`
			Namespace string `json:"namespace"`
			Total     int    `json:"total"`
		} `json:"results"`
		TotalCount int `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(out, &envelope))
	assert.Equal(t, "snapshots", envelope.Command)
	assert.Equal(t, 2, envelope.TotalCount)
	require.Len(t, envelope.Results, 2)
	wantEntries, _, _ := expectedCounts(t)
	for _, snap := range envelope.Results {
		assert.NotEmpty(t, snap.ID)
		assert.Equal(t, "builtin", snap.Namespace)
		assert.Equal(t, wantEntries, snap.Total)
	}
	assert.NotEqual(t, envelope.Results[0].ID, envelope.Results[1].ID)
}
