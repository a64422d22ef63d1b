//go:build !darwin
// +build !darwin

package database

import "fmt"

// Connect reports DuckDB as unavailable; the driver is only built on macOS.
func (d *DuckDB) Connect() error {
	return &ConnectionError{Backend: "duckdb", Err: fmt.Errorf("DuckDB support is only available on macOS")}
}
