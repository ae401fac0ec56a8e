package errors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ProductionMode = os.Getenv("ENV") == "production" || os.Getenv("ENV") == "prod"

// RecordError is the error type returned across the repository boundary.
// Two RecordErrors match under errors.Is when their codes are equal.
type RecordError struct {
	Code    string
	Message string
	cause   error
}

func (e *RecordError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *RecordError) Unwrap() error {
	return e.cause
}

func (e *RecordError) Is(target error) bool {
	if t, ok := target.(*RecordError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	ErrFieldNotAllowed      = &RecordError{Code: "R2001", Message: "Field not allowed"}
	ErrInvalidValue         = &RecordError{Code: "R2007", Message: "Invalid input value"}
	ErrValidation           = &RecordError{Code: "R2008", Message: "Validation error"}
	ErrNotFound             = &RecordError{Code: "R2025", Message: "Record not found"}
	ErrTooManyRows          = &RecordError{Code: "R2000", Message: "Result set too large"}
	ErrUniqueConstraint     = &RecordError{Code: "R2002", Message: "Unique constraint violation"}
	ErrForeignKeyConstraint = &RecordError{Code: "R2003", Message: "Foreign key constraint violation"}
	ErrNullConstraint       = &RecordError{Code: "R2011", Message: "Not null constraint violation"}
	ErrStatement            = &RecordError{Code: "R2010", Message: "Statement failed"}

	ErrConnection = &RecordError{Code: "R1001", Message: "Database not reachable"}
	ErrTimeout    = &RecordError{Code: "R1008", Message: "Operation timeout"}
)

type OperationType string

const (
	OpFind       OperationType = "Find"
	OpFindRange  OperationType = "FindByDateRange"
	OpLoadAll    OperationType = "LoadAll"
	OpInsert     OperationType = "Insert"
	OpUpdate     OperationType = "Update"
	OpUpdateBy   OperationType = "UpdateWhereEquals"
	OpUpdateName OperationType = "UpdateName"
	OpDelete     OperationType = "Delete"
	OpAcquire    OperationType = "Acquire"
)

func NewRecordError(code, message string, cause error) *RecordError {
	return &RecordError{Code: code, Message: message, cause: cause}
}

func Wrap(sentinel *RecordError, cause error) *RecordError {
	return NewRecordError(sentinel.Code, sentinel.Message, cause)
}

// Wrapf attaches a formatted detail to a sentinel without a driver cause.
func Wrapf(sentinel *RecordError, format string, args ...any) *RecordError {
	return &RecordError{
		Code:    sentinel.Code,
		Message: sentinel.Message + ": " + fmt.Sprintf(format, args...),
	}
}

// Is reports whether any error in err's tree matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}

func IsFieldNotAllowed(err error) bool {
	return errors.Is(err, ErrFieldNotAllowed)
}

func IsInvalidValue(err error) bool {
	return errors.Is(err, ErrInvalidValue)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}

func IsStatement(err error) bool {
	return errors.Is(err, ErrStatement)
}

func IsUniqueConstraint(err error) bool {
	return errors.Is(err, ErrUniqueConstraint)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "unique constraint") ||
		strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "duplicate entry") ||
		strings.Contains(errStr, "1062")
}

func isForeignKeyViolation(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "foreign key constraint") ||
		strings.Contains(errStr, "1452")
}

func isNullViolation(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "not null constraint") ||
		strings.Contains(errStr, "not-null constraint") ||
		strings.Contains(errStr, "1048")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "timed out")
}

func isConnectionError(err error) bool {
	if errors.Is(err, sql.ErrConnDone) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "unable to open database file") ||
		strings.Contains(errStr, "failed to connect")
}

// mapPgError classifies a PostgreSQL server error by its SQLSTATE.
func mapPgError(pgErr *pgconn.PgError, err error) *RecordError {
	switch {
	case pgErr.Code == "23505":
		return Wrap(ErrUniqueConstraint, err)
	case pgErr.Code == "23503":
		return Wrap(ErrForeignKeyConstraint, err)
	case pgErr.Code == "23502":
		return Wrap(ErrNullConstraint, err)
	case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P"):
		return Wrap(ErrConnection, err)
	case pgErr.Code == "57014":
		return Wrap(ErrTimeout, err)
	default:
		return Wrap(ErrStatement, err)
	}
}

// MapDriverError converts an error coming out of the driver layer into a
// RecordError. Errors that already carry a code are returned unchanged.
func MapDriverError(err error, op OperationType) error {
	if err == nil {
		return nil
	}

	var recErr *RecordError
	if errors.As(err, &recErr) {
		return err
	}

	if isNoRows(err) {
		return Wrap(ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr, err)
	}

	if op == OpAcquire || isConnectionError(err) {
		return Wrap(ErrConnection, err)
	}

	if isUniqueViolation(err) {
		return Wrap(ErrUniqueConstraint, err)
	}

	if isForeignKeyViolation(err) {
		return Wrap(ErrForeignKeyConstraint, err)
	}

	if isNullViolation(err) {
		return Wrap(ErrNullConstraint, err)
	}

	if isTimeout(err) {
		return Wrap(ErrTimeout, err)
	}

	return Wrap(ErrStatement, err)
}

// SanitizeError hides driver details from user-facing output in production.
func SanitizeError(err error) error {
	if err == nil {
		return nil
	}

	if !ProductionMode {
		return err
	}

	var recErr *RecordError
	if errors.As(err, &recErr) {
		return errors.New(recErr.Message)
	}

	errMsg := err.Error()
	errMsg = sanitizeSQLDetails(errMsg)

	return fmt.Errorf("%s", errMsg)
}

func sanitizeSQLDetails(msg string) string {
	lower := strings.ToLower(msg)
	patterns := []string{"sql", "syntax", "constraint", "table", "column", "relation", "where"}
	for _, pattern := range patterns {
		if strings.Contains(lower, pattern) {
			return "database operation failed"
		}
	}
	return msg
}

func NewValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func NewNotFoundError(resource string) error {
	if ProductionMode {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %s", ErrNotFound, resource)
}
