package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerhard-ee/schemascan/internal/config"
)

func TestNewCatalogPerType(t *testing.T) {
	types := []string{
		"snowflake", "postgres", "mysql", "mssql",
		"bigquery", "databricks", "duckdb", "sqlite",
	}
	for _, typ := range types {
		t.Run(typ, func(t *testing.T) {
			catalog, err := New(&config.Config{Type: typ})
			require.NoError(t, err)
			assert.NotNil(t, catalog)
		})
	}
}

func TestNewCatalogUnsupportedType(t *testing.T) {
	_, err := New(&config.Config{Type: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported warehouse type")
}

func TestConnectionErrorUnwrap(t *testing.T) {
	inner := errors.New("dial tcp: connection refused")
	err := error(&ConnectionError{Backend: "snowflake", Err: inner})

	assert.Contains(t, err.Error(), "snowflake")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, inner)

	var connErr *ConnectionError
	assert.ErrorAs(t, err, &connErr)
}

func TestQueryErrorUnwrap(t *testing.T) {
	inner := errors.New("table not found in catalog")

	withTable := error(&QueryError{Table: "GHOST", Err: inner})
	assert.Contains(t, withTable.Error(), "GHOST")
	assert.ErrorIs(t, withTable, inner)

	withoutTable := error(&QueryError{Err: inner})
	assert.Contains(t, withoutTable.Error(), "catalog query failed")

	wrapped := fmt.Errorf("analysis failed: %w", withTable)
	var queryErr *QueryError
	require.ErrorAs(t, wrapped, &queryErr)
	assert.Equal(t, "GHOST", queryErr.Table)
}

func TestQuoteIdentifiers(t *testing.T) {
	tests := []struct {
		name  string
		quote func(string) string
		in    string
		want  string
	}{
		{"ansi plain", quoteAnsi, "USERS", `"USERS"`},
		{"ansi embedded quote", quoteAnsi, `we"ird`, `"we""ird"`},
		{"backtick plain", quoteBacktick, "users", "`users`"},
		{"backtick embedded", quoteBacktick, "we`ird", "`we``ird`"},
		{"bracket plain", quoteBracket, "Users", "[Users]"},
		{"bracket embedded", quoteBracket, "we]ird", "[we]]ird]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.quote(tt.in))
		})
	}
}

func TestRenderValue(t *testing.T) {
	assert.Equal(t, "", renderValue(nil))
	assert.Equal(t, "hello", renderValue("hello"))
	assert.Equal(t, "bytes", renderValue([]byte("bytes")))
	assert.Equal(t, "42", renderValue(int64(42)))
	assert.Equal(t, "3.14", renderValue(3.14))
	assert.Equal(t, "true", renderValue(true))
}
