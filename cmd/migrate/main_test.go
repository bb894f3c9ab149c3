package main

import (
	"database/sql"
	"io/fs"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMigrationPart(t *testing.T) {
	content := `
-- +migrate Up
CREATE TABLE users (id int);
ALTER TABLE users ADD COLUMN name text;

-- +migrate Down
DROP TABLE users;
`
	t.Run("Extract Up", func(t *testing.T) {
		up := extractMigrationPart(content, "Up")
		assert.Contains(t, up, "CREATE TABLE users")
		assert.Contains(t, up, "ALTER TABLE users")
		assert.NotContains(t, up, "DROP TABLE users")
		assert.NotContains(t, up, "-- +migrate Up")
	})

	t.Run("Extract Down", func(t *testing.T) {
		down := extractMigrationPart(content, "Down")
		assert.Contains(t, down, "DROP TABLE users")
		assert.NotContains(t, down, "CREATE TABLE users")
	})

	t.Run("Missing Section", func(t *testing.T) {
		assert.Empty(t, extractMigrationPart("-- +migrate Up\nSELECT 1;", "Down"))
	})
}

func TestEmbeddedMigrations(t *testing.T) {
	src := migrationSource("")

	files, err := fs.Glob(src, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	var all strings.Builder
	for _, f := range files {
		b, err := fs.ReadFile(src, f)
		require.NoError(t, err)

		content := string(b)
		assert.NotEmpty(t, strings.TrimSpace(extractMigrationPart(content, "Up")), f)
		assert.NotEmpty(t, strings.TrimSpace(extractMigrationPart(content, "Down")), f)
		all.WriteString(content)
	}

	for _, table := range []string{"users", "products", "carts", "donations", "client_storage"} {
		assert.Contains(t, all.String(), "CREATE TABLE IF NOT EXISTS "+table+" ")
	}
}

func testMigrations() fstest.MapFS {
	return fstest.MapFS{
		"20230201_b.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE b (id int);\n-- +migrate Down\nDROP TABLE b;")},
		"20230101_a.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE a (id int);\n-- +migrate Down\nDROP TABLE a;")},
		"README.md":      {Data: []byte("not a migration")},
	}
}

func expectSchemaTable(mock sqlmock.Sqlmock) {
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestRunUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectSchemaTable(mock)

	// applied in file name order, skipping what is already recorded
	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs("20230101_a.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs("20230201_b.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("CREATE TABLE b").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("20230201_b.sql").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, run(db, "up", testMigrations()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunUpFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectSchemaTable(mock)
	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs("20230101_a.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("CREATE TABLE a").
		WillReturnError(sql.ErrConnDone)

	err = run(db, "up", testMigrations())
	assert.ErrorContains(t, err, "migration failed (20230101_a.sql)")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunDown(t *testing.T) {
	t.Run("Rolls Back Latest", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectSchemaTable(mock)
		mock.ExpectQuery("SELECT version FROM schema_migrations").
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("20230201_b.sql"))
		mock.ExpectExec(regexp.QuoteMeta("DROP TABLE b;")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM schema_migrations").
			WithArgs("20230201_b.sql").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, run(db, "down", testMigrations()))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing Applied", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectSchemaTable(mock)
		mock.ExpectQuery("SELECT version FROM schema_migrations").
			WillReturnError(sql.ErrNoRows)

		require.NoError(t, run(db, "down", testMigrations()))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown Version", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectSchemaTable(mock)
		mock.ExpectQuery("SELECT version FROM schema_migrations").
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("20990101_gone.sql"))

		err = run(db, "down", testMigrations())
		assert.ErrorContains(t, err, "migration file not found")
	})
}

func TestRunUnknownMode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectSchemaTable(mock)

	err = run(db, "sideways", testMigrations())
	assert.ErrorContains(t, err, "unknown mode")
}
