package driver

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPoolAdapter adapts *pgxpool.Pool to Database
type PgxPoolAdapter struct {
	pool *pgxpool.Pool
}

// NewPgxPool creates a new adapter from *pgxpool.Pool
func NewPgxPool(pool *pgxpool.Pool) *PgxPoolAdapter {
	return &PgxPoolAdapter{pool: pool}
}

// Acquire checks a connection out of the pgx pool
func (a *PgxPoolAdapter) Acquire(ctx context.Context) (Conn, error) {
	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return &PgxConn{conn: conn}, nil
}

// Ping verifies the database is reachable
func (a *PgxPoolAdapter) Ping(ctx context.Context) error {
	return a.pool.Ping(ctx)
}

// Close closes every connection in the pool
func (a *PgxPoolAdapter) Close() {
	a.pool.Close()
}

// PgxConn wraps *pgxpool.Conn
type PgxConn struct {
	conn *pgxpool.Conn
}

// Exec executes a query that doesn't return rows
func (c *PgxConn) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	result, err := c.conn.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &PgxResult{result: result}, nil
}

// Query executes a query that returns multiple rows
func (c *PgxConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := c.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &PgxRows{rows: rows}, nil
}

// QueryRow executes a query that returns a single row
func (c *PgxConn) QueryRow(ctx context.Context, query string, args ...any) Row {
	return &PgxRow{row: c.conn.QueryRow(ctx, query, args...)}
}

// Release returns the connection to the pgx pool
func (c *PgxConn) Release() {
	c.conn.Release()
}

// PgxResult wraps pgconn.CommandTag
type PgxResult struct {
	result pgconn.CommandTag
}

// RowsAffected returns the number of rows affected
func (r *PgxResult) RowsAffected() int64 {
	return r.result.RowsAffected()
}

// PgxRows wraps pgx.Rows
type PgxRows struct {
	rows pgx.Rows
}

// Close closes the rows iterator
func (r *PgxRows) Close() {
	r.rows.Close()
}

// Err returns any error that occurred during iteration
func (r *PgxRows) Err() error {
	return r.rows.Err()
}

// Next prepares the next result row for reading
func (r *PgxRows) Next() bool {
	return r.rows.Next()
}

// Scan copies the columns in the current row into the values pointed at by dest
func (r *PgxRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

// Columns returns the result column names
func (r *PgxRows) Columns() ([]string, error) {
	fields := r.rows.FieldDescriptions()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names, nil
}

// PgxRow wraps pgx.Row
type PgxRow struct {
	row pgx.Row
}

// Scan copies the columns in the current row into the values pointed at by dest
func (r *PgxRow) Scan(dest ...any) error {
	return r.row.Scan(dest...)
}
