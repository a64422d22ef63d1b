package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/gerhard-ee/schemascan/internal/config"
)

// SQLiteDB introspects a SQLite database file. SQLite has no
// information_schema; sqlite_master and pragma_table_info stand in for it.
// The Database config field is the database file path.
type SQLiteDB struct {
	config *config.Config
	db     *sql.DB
}

func NewSQLite(cfg *config.Config) *SQLiteDB {
	return &SQLiteDB{config: cfg}
}

func (s *SQLiteDB) Connect() error {
	db, err := sql.Open("sqlite", s.config.Database)
	if err != nil {
		return &ConnectionError{Backend: "sqlite", Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return &ConnectionError{Backend: "sqlite", Err: err}
	}

	s.db = db
	return nil
}

func (s *SQLiteDB) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteDB) ListTables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table'
		AND name NOT LIKE 'sqlite_%'
		ORDER BY name`)
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

func (s *SQLiteDB) TableColumns(ctx context.Context, table string) ([]Column, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, type, "notnull", dflt_value
		FROM pragma_table_info(?)
		ORDER BY cid`, table)
	if err != nil {
		return nil, &QueryError{Table: table, Err: err}
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var col Column
		var notNull int
		if err := rows.Scan(&col.Name, &col.DataType, &notNull, &col.Default); err != nil {
			return nil, &QueryError{Table: table, Err: fmt.Errorf("failed to scan column row: %v", err)}
		}
		col.IsNullable = "YES"
		if notNull != 0 {
			col.IsNullable = "NO"
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Table: table, Err: err}
	}
	if len(columns) == 0 {
		return nil, &QueryError{Table: table, Err: fmt.Errorf("table not found in catalog")}
	}
	return columns, nil
}

func (s *SQLiteDB) SampleValues(ctx context.Context, table, column string, limit int) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM %s
		WHERE %s IS NOT NULL
		LIMIT %d`,
		quoteAnsi(column), quoteAnsi(table), quoteAnsi(column), limit)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSamples(rows)
}
