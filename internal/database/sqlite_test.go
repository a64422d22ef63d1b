package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerhard-ee/schemascan/internal/config"
)

// newTestCatalog opens a throwaway SQLite database seeded with two tables
// and a view, exercising the Catalog contract against a real engine.
func newTestCatalog(t *testing.T) *SQLiteDB {
	t.Helper()

	cfg := &config.Config{
		Type:     "sqlite",
		Database: filepath.Join(t.TempDir(), "test.db"),
	}
	catalog := NewSQLite(cfg)
	require.NoError(t, catalog.Connect())
	t.Cleanup(func() { catalog.Close() })

	stmts := []string{
		`CREATE TABLE users (
			id INTEGER NOT NULL,
			email TEXT,
			age INTEGER DEFAULT 21
		)`,
		`CREATE TABLE orders (
			order_id INTEGER NOT NULL,
			zebra TEXT,
			apple TEXT
		)`,
		`CREATE VIEW user_emails AS SELECT email FROM users`,
		`INSERT INTO users (id, email, age) VALUES
			(1, 'a@x.com', 30),
			(2, 'b@x.com', 30),
			(3, NULL, 40),
			(4, 'a@x.com', 50)`,
	}
	for _, stmt := range stmts {
		_, err := catalog.db.Exec(stmt)
		require.NoError(t, err)
	}
	return catalog
}

func TestSQLiteListTables(t *testing.T) {
	catalog := newTestCatalog(t)

	tables, err := catalog.ListTables(context.Background())
	require.NoError(t, err)

	// Lexicographic order, views excluded.
	assert.Equal(t, []string{"orders", "users"}, tables)
}

func TestSQLiteTableColumns(t *testing.T) {
	catalog := newTestCatalog(t)

	columns, err := catalog.TableColumns(context.Background(), "users")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	assert.Equal(t, "id", columns[0].Name)
	assert.Equal(t, "INTEGER", columns[0].DataType)
	assert.Equal(t, "NO", columns[0].IsNullable)

	assert.Equal(t, "email", columns[1].Name)
	assert.Equal(t, "YES", columns[1].IsNullable)

	assert.Equal(t, "age", columns[2].Name)
	require.True(t, columns[2].Default.Valid)
	assert.Equal(t, "21", columns[2].Default.String)
}

func TestSQLiteColumnsKeepDeclarationOrder(t *testing.T) {
	catalog := newTestCatalog(t)

	columns, err := catalog.TableColumns(context.Background(), "orders")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	// Declaration order, not alphabetical: zebra before apple.
	assert.Equal(t, "order_id", columns[0].Name)
	assert.Equal(t, "zebra", columns[1].Name)
	assert.Equal(t, "apple", columns[2].Name)
}

func TestSQLiteUnknownTable(t *testing.T) {
	catalog := newTestCatalog(t)

	_, err := catalog.TableColumns(context.Background(), "ghost")
	require.Error(t, err)

	var queryErr *QueryError
	require.ErrorAs(t, err, &queryErr)
	assert.Equal(t, "ghost", queryErr.Table)
}

func TestSQLiteSampleValues(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	samples, err := catalog.SampleValues(ctx, "users", "email", 5)
	require.NoError(t, err)

	// Distinct and non-null: four rows hold two distinct emails and a NULL.
	assert.Len(t, samples, 2)
	assert.ElementsMatch(t, []string{"a@x.com", "b@x.com"}, samples)
}

func TestSQLiteSampleValuesHonorLimit(t *testing.T) {
	catalog := newTestCatalog(t)

	samples, err := catalog.SampleValues(context.Background(), "users", "id", 2)
	require.NoError(t, err)
	assert.Len(t, samples, 2)
}

func TestSQLiteSampleValuesEmptyTable(t *testing.T) {
	catalog := newTestCatalog(t)

	samples, err := catalog.SampleValues(context.Background(), "orders", "zebra", 5)
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestSQLiteSampleValuesUnknownColumn(t *testing.T) {
	catalog := newTestCatalog(t)

	_, err := catalog.SampleValues(context.Background(), "users", "no_such_column", 5)
	assert.Error(t, err)
}

func TestSQLiteCloseIsIdempotent(t *testing.T) {
	catalog := newTestCatalog(t)
	require.NoError(t, catalog.Close())
	require.NoError(t, catalog.Close())

	never := NewSQLite(&config.Config{Type: "sqlite", Database: "unused.db"})
	assert.NoError(t, never.Close())
}
