package database

import "strings"

// Identifier quoting per dialect family. Table and column names come out of
// the warehouse's own catalog, but they still need quoting so mixed-case and
// reserved-word identifiers survive the round trip into sample queries.

// quoteAnsi quotes an identifier with double quotes (Snowflake, Postgres,
// DuckDB, SQLite).
func quoteAnsi(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// quoteBacktick quotes an identifier with backticks (MySQL, Databricks,
// BigQuery).
func quoteBacktick(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
}

// quoteBracket quotes an identifier with square brackets (SQL Server).
func quoteBracket(ident string) string {
	return "[" + strings.ReplaceAll(ident, "]", "]]") + "]"
}
