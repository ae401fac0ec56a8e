package testing

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/carlosnayan/hrmanager/internal/dialect"
	"github.com/carlosnayan/hrmanager/internal/driver"
)

type column struct {
	name        string
	logicalType string
	nullable    bool
}

type table struct {
	name       string
	columns    []column
	primaryKey []string
}

var employeesTable = table{
	name: "employees",
	columns: []column{
		{"employee_id", "bigint", false},
		{"first_name", "string", true},
		{"last_name", "string", false},
		{"email", "string", true},
		{"phone_number", "string", true},
		{"hire_date", "date", false},
		{"job_id", "string", true},
		{"salary", "decimal", false},
		{"commission_pct", "decimal", true},
		{"manager_id", "bigint", true},
		{"department_id", "bigint", true},
	},
	primaryKey: []string{"employee_id"},
}

var jobHistoryTable = table{
	name: "job_history",
	columns: []column{
		{"employee_id", "bigint", false},
		{"start_date", "date", false},
		{"end_date", "date", true},
		{"job_id", "string", false},
		{"department_id", "bigint", true},
	},
	primaryKey: []string{"employee_id", "start_date"},
}

// schema is in creation order
var schema = []table{employeesTable, jobHistoryTable}

func (tb table) createSQL(d dialect.Dialect) string {
	defs := make([]string, 0, len(tb.columns)+1)
	for _, col := range tb.columns {
		defs = append(defs, fmt.Sprintf("%s %s", d.QuoteIdentifier(col.name), d.MapType(col.logicalType, col.nullable)))
	}

	keys := make([]string, len(tb.primaryKey))
	for i, k := range tb.primaryKey {
		keys[i] = d.QuoteIdentifier(k)
	}
	defs = append(defs, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(keys, ", ")))

	return fmt.Sprintf("CREATE TABLE %s (\n  %s\n)", d.QuoteIdentifier(tb.name), strings.Join(defs, ",\n  "))
}

// SchemaSQL renders the CREATE TABLE statements for employees and
// job_history in d
func SchemaSQL(d dialect.Dialect) []string {
	stmts := make([]string, len(schema))
	for i, tb := range schema {
		stmts[i] = tb.createSQL(d)
	}
	return stmts
}

// CreateSchema creates employees and job_history
func CreateSchema(t *testing.T, db driver.Pool, d dialect.Dialect) {
	t.Helper()
	for _, stmt := range SchemaSQL(d) {
		Exec(t, db, stmt)
	}
}

// DropSchema drops every table CreateSchema created
func DropSchema(t *testing.T, db driver.Pool, d dialect.Dialect) {
	t.Helper()
	for i := len(schema) - 1; i >= 0; i-- {
		Exec(t, db, fmt.Sprintf("DROP TABLE IF EXISTS %s", d.QuoteIdentifier(schema[i].name)))
	}
}

// Exec runs stmt on its own connection and fails the test on error
func Exec(t *testing.T, db driver.Pool, stmt string, args ...any) int64 {
	t.Helper()

	ctx := context.Background()
	conn, err := db.Acquire(ctx)
	if err != nil {
		t.Fatalf("failed to acquire connection: %v", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx, stmt, args...)
	if err != nil {
		t.Fatalf("failed to execute %q: %v", stmt, err)
	}
	return result.RowsAffected()
}
