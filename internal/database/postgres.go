package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/gerhard-ee/schemascan/internal/config"
)

// PostgresDB introspects a PostgreSQL schema through information_schema.
type PostgresDB struct {
	config *config.Config
	db     *sql.DB
}

func NewPostgres(cfg *config.Config) *PostgresDB {
	return &PostgresDB{config: cfg}
}

func (p *PostgresDB) Connect() error {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.config.Host,
		p.config.Port,
		p.config.User,
		p.config.Password,
		p.config.Database)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return &ConnectionError{Backend: "postgres", Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return &ConnectionError{Backend: "postgres", Err: err}
	}

	p.db = db
	return nil
}

func (p *PostgresDB) Close() error {
	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}

func (p *PostgresDB) ListTables(ctx context.Context) ([]string, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1
		AND table_type = 'BASE TABLE'
		ORDER BY table_name`, p.config.Schema)
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

func (p *PostgresDB) TableColumns(ctx context.Context, table string) ([]Column, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT column_name, data_type, is_nullable, column_default,
		       character_maximum_length, numeric_precision, numeric_scale
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position`, p.config.Schema, table)
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

func (p *PostgresDB) SampleValues(ctx context.Context, table, column string, limit int) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM %s.%s
		WHERE %s IS NOT NULL
		LIMIT %d`,
		quoteAnsi(column),
		quoteAnsi(p.config.Schema), quoteAnsi(table),
		quoteAnsi(column), limit)

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSamples(rows)
}
