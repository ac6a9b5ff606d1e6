package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDB points the logger at a fresh database under t.TempDir().
func useTempDB(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = origDBPath
	})
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", DBPath())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLogger(t *testing.T) {
	t.Run("open and close", func(t *testing.T) {
		useTempDB(t)
		require.NoError(t, Open())

		assert.FileExists(t, DBPath())
		assert.Len(t, RunID(), 36, "uuid string form")
	})

	t.Run("log entry", func(t *testing.T) {
		useTempDB(t)
		require.NoError(t, Open())
		SetProject("/srv/community/data")

		Log(Entry{
			Source:  "validate:run",
			Action:  "validate",
			Path:    "/srv/community/data",
			Success: true,
		})

		db := openDB(t)
		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM log").Scan(&count))
		assert.Equal(t, 1, count)

		var runID, project, source, action, path string
		var success int
		err := db.QueryRow("SELECT run_id, project, source, action, path, success FROM log WHERE id = 1").
			Scan(&runID, &project, &source, &action, &path, &success)
		require.NoError(t, err)
		assert.Equal(t, RunID(), runID)
		assert.Equal(t, hash("/srv/community/data"), project)
		assert.Equal(t, "validate:run", source)
		assert.Equal(t, "validate", action)
		assert.Equal(t, "/srv/community/data", path)
		assert.Equal(t, 1, success)
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()

		// Should not panic
		Log(Entry{Source: "validate:run", Action: "validate", Success: true})
		assert.Empty(t, RunID())
	})

	t.Run("open is idempotent", func(t *testing.T) {
		useTempDB(t)
		require.NoError(t, Open())
		first := RunID()

		require.NoError(t, Open())
		assert.Equal(t, first, RunID())
	})
}

func TestBuilder(t *testing.T) {
	t.Run("success with details", func(t *testing.T) {
		useTempDB(t)
		require.NoError(t, Open())

		Event("validate:run", "validate").
			Path("data").
			Detail("errors", 0).
			Detail("warnings", 2).
			Write(nil)

		db := openDB(t)
		var success int
		var detail string
		err := db.QueryRow("SELECT success, detail FROM log ORDER BY id DESC LIMIT 1").Scan(&success, &detail)
		require.NoError(t, err)
		assert.Equal(t, 1, success)
		assert.JSONEq(t, `{"errors":0,"warnings":2}`, detail)
	})

	t.Run("failure records error", func(t *testing.T) {
		useTempDB(t)
		require.NoError(t, Open())

		Event("validate:run", "validate").Path("data").Write(errors.New("2 error(s)"))

		db := openDB(t)
		var success int
		var errMsg string
		err := db.QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "2 error(s)", errMsg)
	})
}

func TestHash(t *testing.T) {
	h1 := hash("/home/user/project/data")
	h2 := hash("/home/user/project/data")
	h3 := hash("/home/user/other/data")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	origDBPath := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = origDBPath }()

	assert.Equal(t, filepath.Join(home, ".datalint", "log", "datalint-log.db"), DBPath())
}
