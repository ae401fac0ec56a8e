package employee

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/carlosnayan/hrmanager/internal/driver"
)

// fakePool records every statement and answers from scripted results.
// Exec results and query results are consumed in order.
type fakePool struct {
	mu sync.Mutex

	acquireErr error
	execs      []fakeExec
	queries    [][][]any

	acquired   int
	released   int
	statements []string
	args       [][]any
}

type fakeExec struct {
	affected int64
	err      error
}

func (p *fakePool) Acquire(ctx context.Context) (driver.Conn, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	p.acquired++
	return &fakeConn{pool: p}, nil
}

func (p *fakePool) record(stmt string, args []any) {
	p.statements = append(p.statements, stmt)
	p.args = append(p.args, args)
}

type fakeConn struct {
	pool     *fakePool
	released bool
}

func (c *fakeConn) Exec(ctx context.Context, stmt string, args ...any) (driver.Result, error) {
	p := c.pool
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record(stmt, args)
	if len(p.execs) == 0 {
		return nil, fmt.Errorf("unexpected exec: %s", stmt)
	}
	next := p.execs[0]
	p.execs = p.execs[1:]
	if next.err != nil {
		return nil, next.err
	}
	return driver.SQLResult(next.affected), nil
}

func (c *fakeConn) Query(ctx context.Context, stmt string, args ...any) (driver.Rows, error) {
	p := c.pool
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record(stmt, args)
	if len(p.queries) == 0 {
		return nil, fmt.Errorf("unexpected query: %s", stmt)
	}
	next := p.queries[0]
	p.queries = p.queries[1:]
	return &fakeRows{values: next}, nil
}

func (c *fakeConn) QueryRow(ctx context.Context, stmt string, args ...any) driver.Row {
	rows, err := c.Query(ctx, stmt, args...)
	if err != nil {
		return &fakeRow{err: err}
	}
	r := rows.(*fakeRows)
	if len(r.values) == 0 {
		return &fakeRow{err: sql.ErrNoRows}
	}
	return &fakeRow{values: r.values[0]}
}

func (c *fakeConn) Release() {
	c.pool.mu.Lock()
	defer c.pool.mu.Unlock()
	if c.released {
		panic("connection released twice")
	}
	c.released = true
	c.pool.released++
}

type fakeRows struct {
	names  []string
	values [][]any
	pos    int
	closed bool
}

func (r *fakeRows) Close()     { r.closed = true }
func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.values) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(dest, r.values[r.pos-1])
}

func (r *fakeRows) Columns() ([]string, error) {
	if r.names != nil {
		return r.names, nil
	}
	return Columns(), nil
}

type fakeRow struct {
	values []any
	err    error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.values)
}

func assign(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(values))
	}
	for i, d := range dest {
		switch target := d.(type) {
		case *int64:
			v, ok := values[i].(int64)
			if !ok {
				return fmt.Errorf("scan: column %d is %T, not int64", i, values[i])
			}
			*target = v
		case sql.Scanner:
			if err := target.Scan(values[i]); err != nil {
				return err
			}
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

// storedRow renders e the way a driver hands its columns back
func storedRow(e Employee, hire time.Time) []any {
	p := e.Params()
	row := []any{
		p.ID,
		textOrNil(p.FirstName),
		p.LastName,
		textOrNil(p.Email),
		textOrNil(p.PhoneNumber),
		hire,
		textOrNil(p.JobID),
		p.Salary.String(),
		nil,
		nil,
		nil,
	}
	if p.Commission.Valid {
		row[8] = p.Commission.Decimal.String()
	}
	if p.ManagerID.Valid {
		row[9] = p.ManagerID.Int64
	}
	if p.DepartmentID.Valid {
		row[10] = p.DepartmentID.Int64
	}
	return row
}

func textOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
