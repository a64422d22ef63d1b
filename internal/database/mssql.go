package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/denisenkom/go-mssqldb"

	"github.com/gerhard-ee/schemascan/internal/config"
)

// MSSQLDB introspects a SQL Server schema through INFORMATION_SCHEMA.
type MSSQLDB struct {
	config *config.Config
	db     *sql.DB
}

func NewMSSQL(cfg *config.Config) *MSSQLDB {
	return &MSSQLDB{config: cfg}
}

func (m *MSSQLDB) Connect() error {
	connStr := fmt.Sprintf("server=%s;port=%d;user id=%s;password=%s;database=%s",
		m.config.Host,
		m.config.Port,
		m.config.User,
		m.config.Password,
		m.config.Database)

	db, err := sql.Open("mssql", connStr)
	if err != nil {
		return &ConnectionError{Backend: "mssql", Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return &ConnectionError{Backend: "mssql", Err: err}
	}

	m.db = db
	return nil
}

func (m *MSSQLDB) Close() error {
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}

func (m *MSSQLDB) ListTables(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT TABLE_NAME
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = ?
		AND TABLE_TYPE = 'BASE TABLE'
		ORDER BY TABLE_NAME`, m.config.Schema)
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

func (m *MSSQLDB) TableColumns(ctx context.Context, table string) ([]Column, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT COLUMN_NAME, DATA_TYPE, IS_NULLABLE, COLUMN_DEFAULT,
		       CHARACTER_MAXIMUM_LENGTH, NUMERIC_PRECISION, NUMERIC_SCALE
		FROM INFORMATION_SCHEMA.COLUMNS
		WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
		ORDER BY ORDINAL_POSITION`, m.config.Schema, table)
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

func (m *MSSQLDB) SampleValues(ctx context.Context, table, column string, limit int) ([]string, error) {
	// SQL Server has no LIMIT clause; TOP bounds the distinct set instead.
	query := fmt.Sprintf(`
		SELECT DISTINCT TOP (%d) %s
		FROM %s.%s
		WHERE %s IS NOT NULL`,
		limit, quoteBracket(column),
		quoteBracket(m.config.Schema), quoteBracket(table),
		quoteBracket(column))

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSamples(rows)
}
