package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gerhard-ee/schemascan/internal/config"
)

// DuckDB introspects a DuckDB database file through information_schema.
// The driver links a native library, so Connect is implemented per platform
// in duckdb_darwin.go and duckdb_other.go. The Database config field is the
// database file path; the schema defaults to main.
type DuckDB struct {
	config *config.Config
	db     *sql.DB
}

func NewDuckDB(cfg *config.Config) *DuckDB {
	return &DuckDB{config: cfg}
}

func (d *DuckDB) schema() string {
	if d.config.Schema != "" {
		return d.config.Schema
	}
	return "main"
}

func (d *DuckDB) Close() error {
	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}

func (d *DuckDB) ListTables(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = ?
		AND table_type = 'BASE TABLE'
		ORDER BY table_name`, d.schema())
	if err != nil {
		return nil, &QueryError{Err: fmt.Errorf("failed to list tables: %v", err)}
	}
	defer rows.Close()

	tables, err := scanTableNames(rows)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	return tables, nil
}

func (d *DuckDB) TableColumns(ctx context.Context, table string) ([]Column, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT column_name, data_type, is_nullable, column_default,
		       character_maximum_length, numeric_precision, numeric_scale
		FROM information_schema.columns
		WHERE table_schema = ? AND table_name = ?
		ORDER BY ordinal_position`, d.schema(), table)
	if err != nil {
		return nil, &QueryError{Table: table, Err: err}
	}
	defer rows.Close()

	columns, err := scanColumnRows(rows)
	if err != nil {
		return nil, &QueryError{Table: table, Err: err}
	}
	if len(columns) == 0 {
		return nil, &QueryError{Table: table, Err: fmt.Errorf("table not found in catalog")}
	}
	return columns, nil
}

func (d *DuckDB) SampleValues(ctx context.Context, table, column string, limit int) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM %s.%s
		WHERE %s IS NOT NULL
		LIMIT %d`,
		quoteAnsi(column),
		quoteAnsi(d.schema()), quoteAnsi(table),
		quoteAnsi(column), limit)

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSamples(rows)
}
