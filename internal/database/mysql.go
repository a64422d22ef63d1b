package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/gerhard-ee/schemascan/internal/config"
)

// MySQLDB introspects a MySQL database through information_schema. MySQL has
// no schema level below the database, so the configured database name is the
// schema for catalog purposes.
type MySQLDB struct {
	config *config.Config
	db     *sql.DB
}

func NewMySQL(cfg *config.Config) *MySQLDB {
	return &MySQLDB{config: cfg}
}

func (m *MySQLDB) Connect() error {
	connStr := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		m.config.User,
		m.config.Password,
		m.config.Host,
		m.config.Port,
		m.config.Database)

	db, err := sql.Open("mysql", connStr)
	if err != nil {
		return &ConnectionError{Backend: "mysql", Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return &ConnectionError{Backend: "mysql", Err: err}
	}

	m.db = db
	return nil
}

func (m *MySQLDB) Close() error {
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}

func (m *MySQLDB) ListTables(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT TABLE_NAME
		FROM information_schema.TABLES
		WHERE TABLE_SCHEMA = ?
		AND TABLE_TYPE = 'BASE TABLE'
		ORDER BY TABLE_NAME`, m.config.Database)
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

func (m *MySQLDB) TableColumns(ctx context.Context, table string) ([]Column, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT COLUMN_NAME, DATA_TYPE, IS_NULLABLE, COLUMN_DEFAULT,
		       CHARACTER_MAXIMUM_LENGTH, NUMERIC_PRECISION, NUMERIC_SCALE
		FROM information_schema.COLUMNS
		WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
		ORDER BY ORDINAL_POSITION`, m.config.Database, table)
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

func (m *MySQLDB) SampleValues(ctx context.Context, table, column string, limit int) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM %s.%s
		WHERE %s IS NOT NULL
		LIMIT %d`,
		quoteBacktick(column),
		quoteBacktick(m.config.Database), quoteBacktick(table),
		quoteBacktick(column), limit)

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSamples(rows)
}
