package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/snowflakedb/gosnowflake"

	"github.com/gerhard-ee/schemascan/internal/config"
)

// SnowflakeDB introspects a Snowflake schema through INFORMATION_SCHEMA.
type SnowflakeDB struct {
	config *config.Config
	db     *sql.DB
}

func NewSnowflake(cfg *config.Config) *SnowflakeDB {
	return &SnowflakeDB{config: cfg}
}

func (s *SnowflakeDB) Connect() error {
	connStr := fmt.Sprintf(
		"%s:%s@%s/%s/%s?warehouse=%s",
		s.config.User, s.config.Password,
		s.config.Account, s.config.Database, s.config.Schema,
		s.config.Warehouse,
	)
	if s.config.Role != "" {
		connStr += "&role=" + s.config.Role
	}

	db, err := sql.Open("snowflake", connStr)
	if err != nil {
		return &ConnectionError{Backend: "snowflake", Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return &ConnectionError{Backend: "snowflake", Err: err}
	}

	s.db = db
	return nil
}

func (s *SnowflakeDB) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SnowflakeDB) ListTables(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT TABLE_NAME
		FROM %s.INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = ?
		AND TABLE_TYPE = 'BASE TABLE'
		ORDER BY TABLE_NAME`,
		quoteAnsi(s.config.Database))

	rows, err := s.db.QueryContext(ctx, query, s.config.Schema)
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

func (s *SnowflakeDB) TableColumns(ctx context.Context, table string) ([]Column, error) {
	query := fmt.Sprintf(`
		SELECT COLUMN_NAME, DATA_TYPE, IS_NULLABLE, COLUMN_DEFAULT,
		       CHARACTER_MAXIMUM_LENGTH, NUMERIC_PRECISION, NUMERIC_SCALE
		FROM %s.INFORMATION_SCHEMA.COLUMNS
		WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
		ORDER BY ORDINAL_POSITION`,
		quoteAnsi(s.config.Database))

	rows, err := s.db.QueryContext(ctx, query, s.config.Schema, table)
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

func (s *SnowflakeDB) SampleValues(ctx context.Context, table, column string, limit int) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM %s.%s.%s
		WHERE %s IS NOT NULL
		LIMIT %d`,
		quoteAnsi(column),
		quoteAnsi(s.config.Database), quoteAnsi(s.config.Schema), quoteAnsi(table),
		quoteAnsi(column), limit)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSamples(rows)
}
