package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gerhard-ee/schemascan/internal/config"
)

// Column describes one table column as reported by the warehouse catalog.
// Fields the backend cannot report (SQLite has no character length, BigQuery
// reports no defaults) are left invalid.
type Column struct {
	Name             string
	DataType         string
	IsNullable       string // "YES" or "NO", as the catalog reports it
	Default          sql.NullString
	CharMaxLength    sql.NullInt64
	NumericPrecision sql.NullInt64
	NumericScale     sql.NullInt64
}

// Catalog defines the schema introspection operations every backend must
// provide. One Catalog owns one warehouse session for the duration of a run.
type Catalog interface {
	// Connect establishes the session. It fails with a *ConnectionError
	// and leaves the Catalog unconnected on authentication or network
	// problems.
	Connect() error
	// Close releases the session. Calling it on a never-connected or
	// already-closed Catalog is a no-op.
	Close() error
	// ListTables returns the base tables of the configured schema in
	// lexicographic order. An empty schema yields an empty slice.
	ListTables(ctx context.Context) ([]string, error)
	// TableColumns returns the columns of table ordered by ordinal
	// position. It fails with a *QueryError when the table is unknown
	// to the catalog.
	TableColumns(ctx context.Context, table string) ([]Column, error)
	// SampleValues returns up to limit distinct non-null values of one
	// column, rendered as strings. Result order is whatever the
	// warehouse returns.
	SampleValues(ctx context.Context, table, column string, limit int) ([]string, error)
}

// New creates a catalog for the configured warehouse type.
func New(cfg *config.Config) (Catalog, error) {
	switch cfg.Type {
	case "snowflake":
		return NewSnowflake(cfg), nil
	case "postgres":
		return NewPostgres(cfg), nil
	case "mysql":
		return NewMySQL(cfg), nil
	case "mssql":
		return NewMSSQL(cfg), nil
	case "bigquery":
		return NewBigQuery(cfg), nil
	case "databricks":
		return NewDatabricks(cfg), nil
	case "duckdb":
		return NewDuckDB(cfg), nil
	case "sqlite":
		return NewSQLite(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported warehouse type: %s", cfg.Type)
	}
}
