package employee

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carlosnayan/hrmanager/internal/driver"
)

const (
	table     = "employees"
	keyColumn = "employee_id"
)

// columns is the select and insert order of the employees table
var columns = []string{
	"employee_id",
	"first_name",
	"last_name",
	"email",
	"phone_number",
	"hire_date",
	"job_id",
	"salary",
	"commission_pct",
	"manager_id",
	"department_id",
}

// Columns returns the employees columns in select order
func Columns() []string {
	return append([]string(nil), columns...)
}

// rowTargets holds one scan destination per employees column
type rowTargets struct {
	id                        int64
	first, last, email, phone sql.NullString
	hire                      Date
	job                       sql.NullString
	salary, commission        decimal.NullDecimal
	manager, department       sql.NullInt64
}

func (t *rowTargets) target(column string) (any, bool) {
	if i := strings.LastIndexByte(column, '.'); i >= 0 {
		column = column[i+1:]
	}
	switch strings.ToLower(column) {
	case "employee_id":
		return &t.id, true
	case "first_name":
		return &t.first, true
	case "last_name":
		return &t.last, true
	case "email":
		return &t.email, true
	case "phone_number":
		return &t.phone, true
	case "hire_date":
		return &t.hire, true
	case "job_id":
		return &t.job, true
	case "salary":
		return &t.salary, true
	case "commission_pct":
		return &t.commission, true
	case "manager_id":
		return &t.manager, true
	case "department_id":
		return &t.department, true
	default:
		return nil, false
	}
}

// FromRow scans a row into an Employee. Values are matched to fields by
// column name when row reports its columns, and by the columns list
// otherwise. Every employees column must be present exactly once.
func FromRow(row driver.Row) (Employee, error) {
	names := columns
	if named, ok := row.(interface{ Columns() ([]string, error) }); ok {
		var err error
		if names, err = named.Columns(); err != nil {
			return Employee{}, err
		}
	}

	var t rowTargets
	dest := make([]any, len(names))
	seen := make(map[any]bool, len(names))
	for i, name := range names {
		target, ok := t.target(name)
		if !ok {
			return Employee{}, fmt.Errorf("unexpected column %q", name)
		}
		if seen[target] {
			return Employee{}, fmt.Errorf("duplicate column %q", name)
		}
		seen[target] = true
		dest[i] = target
	}
	if len(seen) != len(columns) {
		return Employee{}, fmt.Errorf("expected %d employee columns, got %d", len(columns), len(seen))
	}

	if err := row.Scan(dest...); err != nil {
		return Employee{}, err
	}

	// rows come from the store, so they are not re-validated
	return Employee{p: Params{
		ID:           t.id,
		FirstName:    t.first.String,
		LastName:     t.last.String,
		Email:        t.email.String,
		PhoneNumber:  t.phone.String,
		HireDate:     t.hire,
		JobID:        t.job.String,
		Salary:       t.salary.Decimal,
		Commission:   t.commission,
		ManagerID:    t.manager,
		DepartmentID: t.department,
	}}, nil
}

// ToParameters returns the values of e in insert order
func ToParameters(e Employee) []any {
	p := e.p
	return []any{
		p.ID,
		nullString(p.FirstName),
		p.LastName,
		nullString(p.Email),
		nullString(p.PhoneNumber),
		p.HireDate,
		nullString(p.JobID),
		p.Salary,
		p.Commission,
		p.ManagerID,
		p.DepartmentID,
	}
}

// updateParameters returns the values of e in update order, key last
func updateParameters(e Employee) []any {
	params := ToParameters(e)
	return append(params[1:], params[0])
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
