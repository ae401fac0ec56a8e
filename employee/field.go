package employee

import (
	"strings"

	"github.com/carlosnayan/hrmanager/builder"
	"github.com/carlosnayan/hrmanager/internal/errors"
)

// Field is a column that callers may search or update by name. The set of
// fields is closed: only the package-level values below exist.
type Field struct {
	column    string
	typ       builder.FieldType
	updatable bool
}

var (
	FieldID           = Field{"employee_id", builder.Integer, false}
	FieldFirstName    = Field{"first_name", builder.String, true}
	FieldLastName     = Field{"last_name", builder.String, true}
	FieldEmail        = Field{"email", builder.String, true}
	FieldPhoneNumber  = Field{"phone_number", builder.String, true}
	FieldJobID        = Field{"job_id", builder.String, true}
	FieldSalary       = Field{"salary", builder.Decimal, true}
	FieldCommission   = Field{"commission_pct", builder.Decimal, true}
	FieldManagerID    = Field{"manager_id", builder.Integer, true}
	FieldDepartmentID = Field{"department_id", builder.Integer, true}
)

var allowedFields = map[string]Field{
	"id":             FieldID,
	"employee_id":    FieldID,
	"first_name":     FieldFirstName,
	"last_name":      FieldLastName,
	"email":          FieldEmail,
	"phone_number":   FieldPhoneNumber,
	"job_id":         FieldJobID,
	"salary":         FieldSalary,
	"commission_pct": FieldCommission,
	"manager_id":     FieldManagerID,
	"department_id":  FieldDepartmentID,
}

// Fields returns every searchable field in column order
func Fields() []Field {
	return []Field{
		FieldID, FieldFirstName, FieldLastName, FieldEmail, FieldPhoneNumber,
		FieldJobID, FieldSalary, FieldCommission, FieldManagerID, FieldDepartmentID,
	}
}

// ParseField resolves a caller-supplied name. Only exact column names (and
// the alias "id") are accepted; surrounding spaces are ignored.
func ParseField(name string) (Field, error) {
	f, ok := allowedFields[strings.TrimSpace(name)]
	if !ok {
		return Field{}, errors.Wrapf(errors.ErrFieldNotAllowed, "%q", name)
	}
	return f, nil
}

// IsAllowed reports whether name is a searchable field
func IsAllowed(name string) bool {
	_, err := ParseField(name)
	return err == nil
}

// Column returns the column identifier
func (f Field) Column() string {
	return f.column
}

// Type returns the type raw values are coerced to
func (f Field) Type() builder.FieldType {
	return f.typ
}

// Updatable reports whether the field can be the target of UpdateWhereEquals
func (f Field) Updatable() bool {
	return f.updatable
}

func (f Field) String() string {
	return f.column
}
