package employee

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFromRow(t *testing.T) {
	row := &fakeRow{values: []any{
		int64(7),
		nil,
		"King",
		"SKING",
		"515.123.4567",
		time.Date(2003, time.June, 17, 0, 0, 0, 0, time.UTC),
		"AD_PRES",
		"24000.00",
		nil,
		nil,
		int64(90),
	}}

	e, err := FromRow(row)
	if err != nil {
		t.Fatalf("FromRow() error = %v", err)
	}

	if e.ID() != 7 || e.FirstName() != "" || e.LastName() != "King" {
		t.Errorf("unexpected identity %s", e)
	}
	if e.HireDate() != NewDate(2003, time.June, 17) {
		t.Errorf("HireDate() = %s", e.HireDate())
	}
	if !e.Salary().Equal(decimal.NewFromInt(24000)) {
		t.Errorf("Salary() = %s", e.Salary())
	}
	if e.Commission().Valid {
		t.Error("NULL commission must map to an absent value, not zero")
	}
	if e.ManagerID().Valid {
		t.Error("NULL manager must map to an absent value")
	}
	if !e.DepartmentID().Valid || e.DepartmentID().Int64 != 90 {
		t.Errorf("DepartmentID() = %v", e.DepartmentID())
	}
}

func TestFromRow_ScanError(t *testing.T) {
	row := &fakeRow{values: []any{int64(1)}}
	if _, err := FromRow(row); err == nil {
		t.Error("expected scan error")
	}
}

func TestFromRow_MatchesColumnsByName(t *testing.T) {
	rows := &fakeRows{
		names: []string{
			"department_id", "salary", "last_name", "p.employee_id", "hire_date", "email",
			"first_name", "job_id", "phone_number", "commission_pct", "manager_id",
		},
		values: [][]any{{
			int64(90), "17000.00", "Kochhar", int64(101),
			time.Date(2005, time.September, 21, 0, 0, 0, 0, time.UTC), "NKOCHHAR",
			"Neena", "AD_VP", nil, nil, int64(100),
		}},
	}
	if !rows.Next() {
		t.Fatal("expected a row")
	}

	e, err := FromRow(rows)
	if err != nil {
		t.Fatalf("FromRow() error = %v", err)
	}
	if e.ID() != 101 || e.FirstName() != "Neena" || e.LastName() != "Kochhar" || e.Email() != "NKOCHHAR" {
		t.Errorf("unexpected identity %s", e)
	}
	if !e.Salary().Equal(decimal.NewFromInt(17000)) || e.JobID() != "AD_VP" {
		t.Errorf("Salary() = %s, JobID() = %s", e.Salary(), e.JobID())
	}
	if e.ManagerID().Int64 != 100 || e.DepartmentID().Int64 != 90 {
		t.Errorf("ManagerID() = %v, DepartmentID() = %v", e.ManagerID(), e.DepartmentID())
	}
	if e.HireDate() != NewDate(2005, time.September, 21) {
		t.Errorf("HireDate() = %s", e.HireDate())
	}
}

func TestFromRow_RejectsUnknownOrMissingColumns(t *testing.T) {
	tests := map[string][]string{
		"unknown":   append(Columns()[:10:10], "bonus"),
		"missing":   Columns()[:10],
		"duplicate": append(Columns()[:10:10], "salary"),
	}
	for name, names := range tests {
		t.Run(name, func(t *testing.T) {
			values := make([]any, len(names))
			rows := &fakeRows{names: names, values: [][]any{values}}
			rows.Next()
			if _, err := FromRow(rows); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestToParameters(t *testing.T) {
	p := validParams()
	p.PhoneNumber = ""
	p.Email = ""
	p.JobID = ""
	p.Commission = decimal.NewNullDecimal(decimal.RequireFromString("0.25"))
	e, err := New(p)
	if err != nil {
		t.Fatal(err)
	}

	params := ToParameters(e)
	if len(params) != len(columns) {
		t.Fatalf("got %d parameters for %d columns", len(params), len(columns))
	}
	if params[0] != int64(100) {
		t.Errorf("first parameter = %v, want the id", params[0])
	}
	for _, i := range []int{3, 4, 6} {
		v, err := params[i].(sql.NullString).Value()
		if err != nil || v != nil {
			t.Errorf("empty %s should bind as NULL, got %v", columns[i], params[i])
		}
	}
	if params[2] != "Lee" {
		t.Errorf("last_name parameter = %v", params[2])
	}

	update := updateParameters(e)
	if update[len(update)-1] != int64(100) {
		t.Errorf("last update parameter = %v, want the id", update[len(update)-1])
	}
	if update[0] != params[1] {
		t.Errorf("update parameters should start with first_name")
	}
}
