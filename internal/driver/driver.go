package driver

import (
	"context"
)

// Pool hands out connections scoped to a single operation. Every Conn
// returned by Acquire must be released exactly once.
type Pool interface {
	// Acquire checks a connection out of the pool
	Acquire(ctx context.Context) (Conn, error)
}

// Database is a Pool that owns its underlying resources
type Database interface {
	Pool

	// Ping verifies the store is reachable
	Ping(ctx context.Context) error

	// Close releases every pooled connection
	Close()
}

// Conn is a single checked-out connection
type Conn interface {
	// Exec executes a query that doesn't return rows
	Exec(ctx context.Context, sql string, args ...any) (Result, error)

	// Query executes a query that returns multiple rows
	Query(ctx context.Context, sql string, args ...any) (Rows, error)

	// QueryRow executes a query that returns a single row
	QueryRow(ctx context.Context, sql string, args ...any) Row

	// Release returns the connection to its pool
	Release()
}

// Result represents the result of an Exec operation
type Result interface {
	// RowsAffected returns the number of rows affected
	RowsAffected() int64
}

// Rows represents a set of query results
type Rows interface {
	// Close closes the rows iterator
	Close()

	// Err returns any error that occurred during iteration
	Err() error

	// Next prepares the next result row for reading
	Next() bool

	// Scan copies the columns in the current row into the values pointed at by dest
	Scan(dest ...any) error

	// Columns returns the result column names in scan order
	Columns() ([]string, error)
}

// Row represents a single row result
type Row interface {
	// Scan copies the columns in the current row into the values pointed at by dest
	Scan(dest ...any) error
}
