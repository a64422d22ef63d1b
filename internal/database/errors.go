package database

import "fmt"

// ConnectionError reports a failure to establish or verify the warehouse
// session. Connection failures are fatal and are never retried.
type ConnectionError struct {
	Backend string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.Backend, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError reports a failed catalog query: the table list or the column
// metadata of one table. Catalog failures abort the run. Sample queries are
// deliberately not wrapped in QueryError; their failures are rendered into
// the report by the analyzer instead of being propagated.
type QueryError struct {
	Table string
	Err   error
}

func (e *QueryError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("catalog query failed: %v", e.Err)
	}
	return fmt.Sprintf("catalog query failed for table %s: %v", e.Table, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
