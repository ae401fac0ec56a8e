package employee

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carlosnayan/hrmanager/builder"
	"github.com/carlosnayan/hrmanager/internal/dialect"
	"github.com/carlosnayan/hrmanager/internal/driver"
	"github.com/carlosnayan/hrmanager/internal/errors"
	"github.com/carlosnayan/hrmanager/internal/logger"
)

// jobHistory holds the employment periods searched by FindByDateRange
var jobHistory = builder.RangeJoin{
	Table:       "job_history",
	ForeignKey:  "employee_id",
	StartColumn: "start_date",
	EndColumn:   "end_date",
}

// Repository reads and writes employees. Every method acquires one
// connection from the pool and releases it before returning; a write and
// its read-back share that connection. No other state is kept between calls.
type Repository struct {
	pool    driver.Pool
	dialect dialect.Dialect
	stmts   *builder.Statements
	log     *logger.Logger
}

// Option configures a Repository
type Option func(*Repository)

// WithLogger sets the logger used for statements and store failures
func WithLogger(l *logger.Logger) Option {
	return func(r *Repository) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRepository creates a repository over pool using dialect d
func NewRepository(pool driver.Pool, d dialect.Dialect, opts ...Option) *Repository {
	r := &Repository{
		pool:    pool,
		dialect: d,
		stmts:   builder.NewStatements(d, table, columns, keyColumn),
		log:     logger.GetDefaultLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FindBy returns every employee whose field equals raw. The field must be
// allowed and raw must coerce to its type; otherwise nothing is executed.
func (r *Repository) FindBy(ctx context.Context, fieldName, raw string) ([]Employee, error) {
	field, err := ParseField(fieldName)
	if err != nil {
		return nil, err
	}
	value, err := builder.Coerce(field.Type(), raw)
	if err != nil {
		return nil, err
	}

	var found []Employee
	err = r.withConn(ctx, errors.OpFind, func(conn driver.Conn, log *logger.Logger) error {
		found, err = r.query(ctx, conn, log, r.stmts.Find(field.Column()), value)
		return err
	})
	return found, err
}

// FindByDateRange returns the employees with a job history period
// overlapping [start, end]. A period without an end date counts as ongoing.
func (r *Repository) FindByDateRange(ctx context.Context, start, end Date) ([]Employee, error) {
	if start.IsZero() || end.IsZero() {
		return nil, errors.Wrapf(errors.ErrInvalidValue, "date range needs both bounds")
	}
	if end.Before(start) {
		return nil, errors.Wrapf(errors.ErrInvalidValue, "range start %s is after end %s", start, end)
	}

	var found []Employee
	err := r.withConn(ctx, errors.OpFindRange, func(conn driver.Conn, log *logger.Logger) error {
		var err error
		found, err = r.query(ctx, conn, log, r.stmts.Overlapping(jobHistory), end, start, start)
		return err
	})
	return found, err
}

// LoadAll returns every employee ordered by id
func (r *Repository) LoadAll(ctx context.Context) ([]Employee, error) {
	var found []Employee
	err := r.withConn(ctx, errors.OpLoadAll, func(conn driver.Conn, log *logger.Logger) error {
		var err error
		found, err = r.query(ctx, conn, log, r.stmts.SelectAll())
		return err
	})
	return found, err
}

// Insert writes e and returns the stored row, including the hire date the
// store fills in when e has none
func (r *Repository) Insert(ctx context.Context, e Employee) (Employee, error) {
	if err := e.Validate(); err != nil {
		return Employee{}, err
	}

	fallbacks := map[string]string{"hire_date": r.dialect.GetCurrentDateFunction()}

	var stored Employee
	err := r.withConn(ctx, errors.OpInsert, func(conn driver.Conn, log *logger.Logger) error {
		if err := r.execAffecting(ctx, conn, log, r.stmts.Insert(fallbacks), ToParameters(e)...); err != nil {
			return err
		}
		var err error
		stored, err = r.readBack(ctx, conn, log, e.ID())
		return err
	})
	return stored, err
}

// Update rewrites every attribute of the row with e's id and returns the
// stored row. A zero hire date keeps the stored one.
func (r *Repository) Update(ctx context.Context, e Employee) (Employee, error) {
	if err := e.Validate(); err != nil {
		return Employee{}, err
	}

	var stored Employee
	err := r.withConn(ctx, errors.OpUpdate, func(conn driver.Conn, log *logger.Logger) error {
		if err := r.execAffecting(ctx, conn, log, r.stmts.UpdateByKey("hire_date"), updateParameters(e)...); err != nil {
			return err
		}
		var err error
		stored, err = r.readBack(ctx, conn, log, e.ID())
		return err
	})
	return stored, err
}

// UpdateWhereEquals sets field to newRaw on every row where it equals
// oldRaw, then returns every row now holding newRaw. That includes rows
// which already held newRaw before the call.
func (r *Repository) UpdateWhereEquals(ctx context.Context, fieldName, oldRaw, newRaw string) ([]Employee, error) {
	field, err := ParseField(fieldName)
	if err != nil {
		return nil, err
	}
	if !field.Updatable() {
		return nil, errors.Wrapf(errors.ErrFieldNotAllowed, "%s cannot be updated", field)
	}
	oldValue, err := builder.Coerce(field.Type(), oldRaw)
	if err != nil {
		return nil, err
	}
	newValue, err := builder.Coerce(field.Type(), newRaw)
	if err != nil {
		return nil, err
	}

	var found []Employee
	err = r.withConn(ctx, errors.OpUpdateBy, func(conn driver.Conn, log *logger.Logger) error {
		if err := r.execAffecting(ctx, conn, log, r.stmts.UpdateWhereEquals(field.Column()), newValue, oldValue); err != nil {
			return err
		}
		var err error
		found, err = r.query(ctx, conn, log, r.stmts.Find(field.Column()), newValue)
		return err
	})
	return found, err
}

// UpdateName renames every employee whose "first last" name equals
// oldFullName and returns the employees now carrying the new name
func (r *Repository) UpdateName(ctx context.Context, oldFullName, newFirst, newLast string) ([]Employee, error) {
	oldFullName = strings.TrimSpace(oldFullName)
	newFirst = strings.TrimSpace(newFirst)
	newLast = strings.TrimSpace(newLast)
	if oldFullName == "" || newLast == "" {
		return nil, errors.Wrapf(errors.ErrInvalidValue, "old full name and new last name are required")
	}

	names := []string{FieldFirstName.Column(), FieldLastName.Column()}

	var found []Employee
	err := r.withConn(ctx, errors.OpUpdateName, func(conn driver.Conn, log *logger.Logger) error {
		stmt := r.stmts.UpdateWhereConcat(names, names, " ")
		if err := r.execAffecting(ctx, conn, log, stmt, newFirst, newLast, oldFullName); err != nil {
			return err
		}
		var err error
		found, err = r.query(ctx, conn, log, r.stmts.FindMatching(names...), newFirst, newLast)
		return err
	})
	return found, err
}

// Delete removes the employee with id. It reports false, without error,
// when no such employee exists.
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := r.withConn(ctx, errors.OpDelete, func(conn driver.Conn, log *logger.Logger) error {
		affected, err := r.exec(ctx, conn, log, r.stmts.DeleteByKey(), id)
		deleted = affected > 0
		return err
	})
	return deleted, err
}

// withConn runs fn on a freshly acquired connection, releases it, and maps
// any failure into a RecordError. Store failures are logged here.
func (r *Repository) withConn(ctx context.Context, op errors.OperationType, fn func(driver.Conn, *logger.Logger) error) error {
	log := r.log.With("op", string(op)).With("op_id", uuid.NewString())

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		mapped := errors.MapDriverError(err, errors.OpAcquire)
		log.Err(mapped, "acquire connection")
		return mapped
	}
	defer conn.Release()

	if err := fn(conn, log); err != nil {
		mapped := errors.MapDriverError(err, op)
		if !errors.IsNotFound(mapped) {
			log.Err(mapped, string(op)+" failed")
		}
		return mapped
	}
	return nil
}

func (r *Repository) query(ctx context.Context, conn driver.Conn, log *logger.Logger, stmt string, args ...any) ([]Employee, error) {
	start := time.Now()
	rows, err := conn.Query(ctx, stmt, args...)
	builder.LogStatement(log, stmt, args, start)
	if err != nil {
		return nil, err
	}

	found, err := builder.CollectRows(rows, FromRow)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, errors.Wrapf(errors.ErrNotFound, "no matching employees")
	}
	return found, nil
}

func (r *Repository) exec(ctx context.Context, conn driver.Conn, log *logger.Logger, stmt string, args ...any) (int64, error) {
	start := time.Now()
	result, err := conn.Exec(ctx, stmt, args...)
	builder.LogStatement(log, stmt, args, start)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// execAffecting is exec where zero affected rows is ErrNotFound
func (r *Repository) execAffecting(ctx context.Context, conn driver.Conn, log *logger.Logger, stmt string, args ...any) error {
	affected, err := r.exec(ctx, conn, log, stmt, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.Wrapf(errors.ErrNotFound, "no rows affected")
	}
	return nil
}

func (r *Repository) readBack(ctx context.Context, conn driver.Conn, log *logger.Logger, id int64) (Employee, error) {
	found, err := r.query(ctx, conn, log, r.stmts.SelectByKey(), id)
	if err != nil {
		return Employee{}, err
	}
	return found[0], nil
}
