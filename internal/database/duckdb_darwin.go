//go:build darwin
// +build darwin

package database

import (
	"database/sql"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Connect opens the DuckDB database file.
func (d *DuckDB) Connect() error {
	dbPath := d.config.Database
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(".", dbPath)
	}

	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return &ConnectionError{Backend: "duckdb", Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return &ConnectionError{Backend: "duckdb", Err: err}
	}

	d.db = db
	return nil
}
