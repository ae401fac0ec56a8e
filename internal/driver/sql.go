package driver

import (
	"context"
	"database/sql"
)

// SQLDBAdapter adapts *sql.DB (pgx stdlib, MySQL, SQLite) to Database
type SQLDBAdapter struct {
	db *sql.DB
}

// NewSQLDB creates a new adapter from *sql.DB
func NewSQLDB(db *sql.DB) *SQLDBAdapter {
	return &SQLDBAdapter{db: db}
}

// Acquire reserves a dedicated connection from the database/sql pool
func (a *SQLDBAdapter) Acquire(ctx context.Context) (Conn, error) {
	conn, err := a.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return &SQLConn{conn: conn}, nil
}

// Ping verifies the database is reachable
func (a *SQLDBAdapter) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

// Close closes the underlying *sql.DB
func (a *SQLDBAdapter) Close() {
	_ = a.db.Close()
}

// SQLDB returns the wrapped *sql.DB
func (a *SQLDBAdapter) SQLDB() *sql.DB {
	return a.db
}

// SQLConn wraps *sql.Conn
type SQLConn struct {
	conn *sql.Conn
}

// Exec executes a query that doesn't return rows
func (c *SQLConn) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	result, err := c.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	return SQLResult(affected), nil
}

// Query executes a query that returns multiple rows
func (c *SQLConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := c.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &SQLRows{rows: rows}, nil
}

// QueryRow executes a query that returns a single row
func (c *SQLConn) QueryRow(ctx context.Context, query string, args ...any) Row {
	return c.conn.QueryRowContext(ctx, query, args...)
}

// Release hands the connection back to database/sql
func (c *SQLConn) Release() {
	_ = c.conn.Close()
}

// SQLResult is the affected row count of an Exec
type SQLResult int64

// RowsAffected returns the number of rows affected
func (r SQLResult) RowsAffected() int64 {
	return int64(r)
}

// SQLRows wraps *sql.Rows
type SQLRows struct {
	rows *sql.Rows
}

// Close closes the rows iterator
func (r *SQLRows) Close() {
	_ = r.rows.Close()
}

// Err returns any error that occurred during iteration
func (r *SQLRows) Err() error {
	return r.rows.Err()
}

// Next prepares the next result row for reading
func (r *SQLRows) Next() bool {
	return r.rows.Next()
}

// Scan copies the columns in the current row into the values pointed at by dest
func (r *SQLRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

// Columns returns the result column names
func (r *SQLRows) Columns() ([]string, error) {
	return r.rows.Columns()
}
