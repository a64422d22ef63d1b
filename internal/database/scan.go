package database

import (
	"database/sql"
	"fmt"
	"time"
)

// scanTableNames drains a single-column result set of table names.
func scanTableNames(rows *sql.Rows) ([]string, error) {
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %v", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %v", err)
	}
	return tables, nil
}

// scanColumnRows drains the seven-field column metadata result set shared by
// the information_schema backends.
func scanColumnRows(rows *sql.Rows) ([]Column, error) {
	var columns []Column
	for rows.Next() {
		var col Column
		if err := rows.Scan(&col.Name, &col.DataType, &col.IsNullable, &col.Default,
			&col.CharMaxLength, &col.NumericPrecision, &col.NumericScale); err != nil {
			return nil, fmt.Errorf("failed to scan column row: %v", err)
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns: %v", err)
	}
	return columns, nil
}

// scanSamples drains a single-column result set of sampled values.
func scanSamples(rows *sql.Rows) ([]string, error) {
	var samples []string
	for rows.Next() {
		var value interface{}
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to scan sample value: %v", err)
		}
		samples = append(samples, renderValue(value))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating samples: %v", err)
	}
	return samples, nil
}

// renderValue formats a sampled value for display. Drivers hand back a mix
// of strings, numerics, byte slices and timestamps depending on the column
// type.
func renderValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(t)
	case string:
		return t
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprintf("%v", t)
	}
}
