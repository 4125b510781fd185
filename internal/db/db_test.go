package db

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordwonder/assets"
)

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "app.db")
	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()
	assert.FileExists(t, path)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, assets.Migrations()))
	require.NoError(t, Migrate(db, assets.Migrations()))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM _migrations`).Scan(&n))
	assert.Equal(t, 2, n)

	for _, table := range []string{"daily_results", "prefs"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		assert.NoError(t, err, table)
	}
}

func TestMigrateOrderAndFailure(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	migrations := fstest.MapFS{
		"002_b.sql": {Data: []byte(`ALTER TABLE a ADD COLUMN note TEXT;`)},
		"001_a.sql": {Data: []byte(`CREATE TABLE a (id INTEGER PRIMARY KEY);`)},
		"README.md": {Data: []byte(`not a migration`)},
	}
	require.NoError(t, Migrate(db, migrations))

	_, err = db.Exec(`INSERT INTO a (note) VALUES ('x')`)
	assert.NoError(t, err)

	broken := fstest.MapFS{"003_bad.sql": {Data: []byte(`CREATE TABLE nope (`)}}
	err = Migrate(db, broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply 003_bad.sql")

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM _migrations`).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestMigrateSelfManagedTransaction(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	initial := fstest.MapFS{
		"001_a.sql": {Data: []byte(`CREATE TABLE a (id INTEGER PRIMARY KEY, name TEXT);`)},
	}
	require.NoError(t, Migrate(db, initial))
	_, err = db.Exec(`INSERT INTO a (id, name) VALUES (1, NULL)`)
	require.NoError(t, err)

	// a table rebuild carries its own transaction, which cannot nest
	rebuild := fstest.MapFS{
		"001_a.sql": initial["001_a.sql"],
		"002_rebuild.sql": {Data: []byte(`
PRAGMA foreign_keys=OFF;
BEGIN TRANSACTION;
CREATE TABLE a_new (id INTEGER PRIMARY KEY, name TEXT NOT NULL DEFAULT '');
INSERT INTO a_new (id, name) SELECT id, COALESCE(name, '') FROM a;
DROP TABLE a;
ALTER TABLE a_new RENAME TO a;
COMMIT;
PRAGMA foreign_keys=ON;
`)},
	}
	require.NoError(t, Migrate(db, rebuild))
	require.NoError(t, Migrate(db, rebuild))

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM a WHERE id = 1`).Scan(&name))
	assert.Equal(t, "", name)
	_, err = db.Exec(`INSERT INTO a (id, name) VALUES (2, NULL)`)
	assert.Error(t, err, "rebuilt column is NOT NULL")

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM _migrations`).Scan(&n))
	assert.Equal(t, 2, n)
}
