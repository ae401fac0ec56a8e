package employee

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carlosnayan/hrmanager/builder"
)

// Params carries the attributes of a new Employee. Optional numeric
// attributes use the sql.Null* and decimal.NullDecimal wrappers.
type Params struct {
	ID           int64               `validate:"gt=0"`
	FirstName    string              `validate:"max=20"`
	LastName     string              `validate:"required,max=25"`
	Email        string              `validate:"max=25"`
	PhoneNumber  string              `validate:"max=20"`
	HireDate     Date                // zero means the store's current date
	JobID        string              `validate:"max=10"`
	Salary       decimal.Decimal     `validate:"gte=0"`
	Commission   decimal.NullDecimal `validate:"omitempty,gte=0"`
	ManagerID    sql.NullInt64       `validate:"omitempty,gt=0"`
	DepartmentID sql.NullInt64       `validate:"omitempty,gt=0"`
}

// Employee is an immutable employees row. Use New to build one and the
// With methods to derive modified copies.
type Employee struct {
	p Params
}

// New validates p and returns the Employee it describes
func New(p Params) (Employee, error) {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	if err := builder.ValidateStruct(p); err != nil {
		return Employee{}, err
	}
	return Employee{p: p}, nil
}

func (e Employee) ID() int64                       { return e.p.ID }
func (e Employee) FirstName() string               { return e.p.FirstName }
func (e Employee) LastName() string                { return e.p.LastName }
func (e Employee) Email() string                   { return e.p.Email }
func (e Employee) PhoneNumber() string             { return e.p.PhoneNumber }
func (e Employee) HireDate() Date                  { return e.p.HireDate }
func (e Employee) JobID() string                   { return e.p.JobID }
func (e Employee) Salary() decimal.Decimal         { return e.p.Salary }
func (e Employee) Commission() decimal.NullDecimal { return e.p.Commission }
func (e Employee) ManagerID() sql.NullInt64        { return e.p.ManagerID }
func (e Employee) DepartmentID() sql.NullInt64     { return e.p.DepartmentID }

// Params returns a copy of the attributes
func (e Employee) Params() Params {
	return e.p
}

// FullName joins first and last name the way UpdateName matches them
func (e Employee) FullName() string {
	if e.p.FirstName == "" {
		return e.p.LastName
	}
	return e.p.FirstName + " " + e.p.LastName
}

func (e Employee) WithFirstName(v string) Employee {
	e.p.FirstName = v
	return e
}

func (e Employee) WithLastName(v string) Employee {
	e.p.LastName = v
	return e
}

func (e Employee) WithEmail(v string) Employee {
	e.p.Email = v
	return e
}

func (e Employee) WithPhoneNumber(v string) Employee {
	e.p.PhoneNumber = v
	return e
}

func (e Employee) WithHireDate(v Date) Employee {
	e.p.HireDate = v
	return e
}

func (e Employee) WithJobID(v string) Employee {
	e.p.JobID = v
	return e
}

func (e Employee) WithSalary(v decimal.Decimal) Employee {
	e.p.Salary = v
	return e
}

func (e Employee) WithCommission(v decimal.NullDecimal) Employee {
	e.p.Commission = v
	return e
}

func (e Employee) WithManagerID(v sql.NullInt64) Employee {
	e.p.ManagerID = v
	return e
}

func (e Employee) WithDepartmentID(v sql.NullInt64) Employee {
	e.p.DepartmentID = v
	return e
}

// Validate re-checks the attributes, e.g. after a chain of With calls
func (e Employee) Validate() error {
	return builder.ValidateStruct(e.p)
}

// Equal compares every attribute, decimals by value
func (e Employee) Equal(other Employee) bool {
	a, b := e.p, other.p
	return a.ID == b.ID &&
		a.FirstName == b.FirstName &&
		a.LastName == b.LastName &&
		a.Email == b.Email &&
		a.PhoneNumber == b.PhoneNumber &&
		a.HireDate == b.HireDate &&
		a.JobID == b.JobID &&
		a.Salary.Equal(b.Salary) &&
		a.Commission.Valid == b.Commission.Valid &&
		(!a.Commission.Valid || a.Commission.Decimal.Equal(b.Commission.Decimal)) &&
		a.ManagerID == b.ManagerID &&
		a.DepartmentID == b.DepartmentID
}

func (e Employee) String() string {
	return fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s",
		e.p.ID,
		e.p.FirstName,
		e.p.LastName,
		e.p.Email,
		e.p.PhoneNumber,
		e.p.HireDate,
		e.p.JobID,
		e.p.Salary.String(),
		nullDecimalString(e.p.Commission),
		nullIntString(e.p.ManagerID),
		nullIntString(e.p.DepartmentID),
	)
}

func nullDecimalString(v decimal.NullDecimal) string {
	if !v.Valid {
		return "-"
	}
	return v.Decimal.String()
}

func nullIntString(v sql.NullInt64) string {
	if !v.Valid {
		return "-"
	}
	return fmt.Sprint(v.Int64)
}
