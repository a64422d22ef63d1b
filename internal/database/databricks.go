package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/databricks/databricks-sql-go"

	"github.com/gerhard-ee/schemascan/internal/config"
)

// DatabricksDB introspects a Unity Catalog schema through the catalog's
// information_schema.
type DatabricksDB struct {
	config *config.Config
	db     *sql.DB
}

func NewDatabricks(cfg *config.Config) *DatabricksDB {
	return &DatabricksDB{config: cfg}
}

func (d *DatabricksDB) Connect() error {
	// Databricks connection string format:
	// "databricks://token:<access_token>@<host>:443/<http_path>?catalog=<catalog>&schema=<schema>"
	connStr := fmt.Sprintf("databricks://token:%s@%s:443/%s?catalog=%s&schema=%s",
		d.config.Token,
		d.config.Workspace,
		d.config.Database,
		d.config.Catalog,
		d.config.Schema)

	db, err := sql.Open("databricks", connStr)
	if err != nil {
		return &ConnectionError{Backend: "databricks", Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return &ConnectionError{Backend: "databricks", Err: err}
	}

	d.db = db
	return nil
}

func (d *DatabricksDB) Close() error {
	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}

func (d *DatabricksDB) ListTables(ctx context.Context) ([]string, error) {
	// Unity Catalog reports MANAGED and EXTERNAL for physical tables;
	// filtering out views matches the base-table semantics of the other
	// backends.
	query := fmt.Sprintf(`
		SELECT table_name
		FROM %s.information_schema.tables
		WHERE table_schema = ?
		AND table_type != 'VIEW'
		ORDER BY table_name`,
		quoteBacktick(d.config.Catalog))

	rows, err := d.db.QueryContext(ctx, query, d.config.Schema)
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

func (d *DatabricksDB) TableColumns(ctx context.Context, table string) ([]Column, error) {
	query := fmt.Sprintf(`
		SELECT column_name, data_type, is_nullable, column_default,
		       character_maximum_length, numeric_precision, numeric_scale
		FROM %s.information_schema.columns
		WHERE table_schema = ? AND table_name = ?
		ORDER BY ordinal_position`,
		quoteBacktick(d.config.Catalog))

	rows, err := d.db.QueryContext(ctx, query, d.config.Schema, table)
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

func (d *DatabricksDB) SampleValues(ctx context.Context, table, column string, limit int) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM %s.%s.%s
		WHERE %s IS NOT NULL
		LIMIT %d`,
		quoteBacktick(column),
		quoteBacktick(d.config.Catalog), quoteBacktick(d.config.Schema), quoteBacktick(table),
		quoteBacktick(column), limit)

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSamples(rows)
}
