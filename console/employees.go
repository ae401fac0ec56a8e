package console

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carlosnayan/hrmanager/builder"
	"github.com/carlosnayan/hrmanager/employee"
	"github.com/carlosnayan/hrmanager/internal/errors"
)

// EmployeeStore is the part of employee.Repository the menu drives
type EmployeeStore interface {
	FindBy(ctx context.Context, field, raw string) ([]employee.Employee, error)
	FindByDateRange(ctx context.Context, start, end employee.Date) ([]employee.Employee, error)
	LoadAll(ctx context.Context) ([]employee.Employee, error)
	Insert(ctx context.Context, e employee.Employee) (employee.Employee, error)
	Update(ctx context.Context, e employee.Employee) (employee.Employee, error)
	UpdateWhereEquals(ctx context.Context, field, oldRaw, newRaw string) ([]employee.Employee, error)
	UpdateName(ctx context.Context, oldFullName, newFirst, newLast string) ([]employee.Employee, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

const employeeHeader = "ID\tFIRST\tLAST\tEMAIL\tPHONE\tHIRED\tJOB\tSALARY\tCOMM\tMGR\tDEPT"

type employeeMenu struct {
	store EmployeeStore
	io    *IO
}

// NewEmployeeMenu builds the employee management menu
func NewEmployeeMenu(store EmployeeStore, io *IO) *Menu {
	m := &employeeMenu{store: store, io: io}
	return NewMenu("Employees", io,
		Entry{Label: "Search by field", Run: m.search},
		Entry{Label: "Search by job history period", Run: m.searchRange},
		Entry{Label: "List all", Run: m.list},
		Entry{Label: "Add", Run: m.add},
		Entry{Label: "Update", Run: m.update},
		Entry{Label: "Rename", Run: m.rename},
		Entry{Label: "Update by field", Run: m.updateBy},
		Entry{Label: "Delete", Run: m.delete},
		Entry{Label: "Exit", Run: exit},
	)
}

func exit(context.Context) error {
	return ErrExit
}

// ask prompts once and turns exhausted input into errEndOfInput
func ask(io *IO, message string) (string, error) {
	answer, ok := io.Prompt(message)
	if !ok {
		return "", errEndOfInput
	}
	return answer, nil
}

func fieldNames() string {
	names := make([]string, 0, len(employee.Fields()))
	for _, f := range employee.Fields() {
		names = append(names, f.Column())
	}
	return strings.Join(names, ", ")
}

func (m *employeeMenu) show(found []employee.Employee) {
	m.io.Info(employeeHeader)
	for _, e := range found {
		m.io.Println(e.String())
	}
	m.io.Info(fmt.Sprintf("%d row(s)", len(found)))
}

func (m *employeeMenu) search(ctx context.Context) error {
	m.io.Info("Fields: " + fieldNames())
	field, err := ask(m.io, "Field: ")
	if err != nil {
		return err
	}
	value, err := ask(m.io, "Value: ")
	if err != nil {
		return err
	}

	found, err := m.store.FindBy(ctx, field, value)
	if err != nil {
		return err
	}
	m.show(found)
	return nil
}

func (m *employeeMenu) searchRange(ctx context.Context) error {
	start, err := m.askDate("Start date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	end, err := m.askDate("End date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	found, err := m.store.FindByDateRange(ctx, start, end)
	if err != nil {
		return err
	}
	m.show(found)
	return nil
}

func (m *employeeMenu) list(ctx context.Context) error {
	found, err := m.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	m.show(found)
	return nil
}

func (m *employeeMenu) add(ctx context.Context) error {
	p, err := m.readParams(employee.Params{}, false)
	if err != nil {
		return err
	}
	e, err := employee.New(p)
	if err != nil {
		return err
	}

	stored, err := m.store.Insert(ctx, e)
	if err != nil {
		return err
	}
	m.io.Success("Added")
	m.show([]employee.Employee{stored})
	return nil
}

func (m *employeeMenu) update(ctx context.Context) error {
	id, err := ask(m.io, "Employee id: ")
	if err != nil {
		return err
	}
	found, err := m.store.FindBy(ctx, employee.FieldID.Column(), id)
	if err != nil {
		return err
	}

	current := found[0]
	m.show(found)
	m.io.Info("Leave blank to keep a value, '-' clears an optional one")

	p, err := m.readParams(current.Params(), true)
	if err != nil {
		return err
	}
	e, err := employee.New(p)
	if err != nil {
		return err
	}

	stored, err := m.store.Update(ctx, e)
	if err != nil {
		return err
	}
	m.io.Success("Updated")
	m.show([]employee.Employee{stored})
	return nil
}

func (m *employeeMenu) rename(ctx context.Context) error {
	old, err := ask(m.io, "Current full name: ")
	if err != nil {
		return err
	}
	first, err := ask(m.io, "New first name: ")
	if err != nil {
		return err
	}
	last, err := ask(m.io, "New last name: ")
	if err != nil {
		return err
	}

	found, err := m.store.UpdateName(ctx, old, first, last)
	if err != nil {
		return err
	}
	m.io.Success("Renamed")
	m.show(found)
	return nil
}

func (m *employeeMenu) updateBy(ctx context.Context) error {
	m.io.Info("Fields: " + fieldNames())
	field, err := ask(m.io, "Field: ")
	if err != nil {
		return err
	}
	oldValue, err := ask(m.io, "Current value: ")
	if err != nil {
		return err
	}
	newValue, err := ask(m.io, "New value: ")
	if err != nil {
		return err
	}

	found, err := m.store.UpdateWhereEquals(ctx, field, oldValue, newValue)
	if err != nil {
		return err
	}
	m.io.Success("Updated")
	m.show(found)
	return nil
}

func (m *employeeMenu) delete(ctx context.Context) error {
	raw, err := ask(m.io, "Employee id: ")
	if err != nil {
		return err
	}
	id, err := parseInt(raw)
	if err != nil {
		return err
	}

	deleted, err := m.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		m.io.Warn(fmt.Sprintf("No employee with id %d", id))
		return nil
	}
	m.io.Success("Deleted")
	return nil
}

func (m *employeeMenu) askDate(message string) (employee.Date, error) {
	raw, err := ask(m.io, message)
	if err != nil {
		return employee.Date{}, err
	}
	d, err := employee.ParseDate(raw)
	if err != nil {
		return employee.Date{}, errors.Wrapf(errors.ErrInvalidValue, "%q is not a date", raw)
	}
	return d, nil
}

// readParams prompts for every attribute. When editing, a blank answer keeps
// the value in p and "-" clears an optional one; the id is never asked for.
func (m *employeeMenu) readParams(p employee.Params, editing bool) (employee.Params, error) {
	f := form{io: m.io, editing: editing}

	if !editing {
		f.integer("Employee id", &p.ID)
	}
	f.text("First name", &p.FirstName)
	f.text("Last name", &p.LastName)
	f.text("Email", &p.Email)
	f.text("Phone number", &p.PhoneNumber)
	f.date("Hire date (YYYY-MM-DD, blank for today)", &p.HireDate)
	f.text("Job id", &p.JobID)
	f.decimal("Salary", &p.Salary)
	f.nullDecimal("Commission", &p.Commission)
	f.nullInt("Manager id", &p.ManagerID)
	f.nullInt("Department id", &p.DepartmentID)

	return p, f.err
}

// form reads a sequence of answers and stops at the first error
type form struct {
	io      *IO
	editing bool
	err     error
}

// answer returns the raw text, or skip when the answer is blank and the
// current value is kept
func (f *form) answer(label string, current string) (raw string, skip bool) {
	if f.err != nil {
		return "", true
	}
	message := label + ": "
	if f.editing && current != "" {
		message = fmt.Sprintf("%s [%s]: ", label, current)
	}
	raw, f.err = ask(f.io, message)
	if f.err != nil {
		return "", true
	}
	if raw == "" {
		return "", true
	}
	return raw, false
}

func (f *form) text(label string, dst *string) {
	raw, skip := f.answer(label, *dst)
	if skip {
		return
	}
	if raw == "-" {
		raw = ""
	}
	*dst = raw
}

func (f *form) integer(label string, dst *int64) {
	raw, skip := f.answer(label, "")
	if skip {
		return
	}
	*dst, f.err = parseInt(raw)
}

func (f *form) decimal(label string, dst *decimal.Decimal) {
	raw, skip := f.answer(label, dst.String())
	if skip {
		return
	}
	*dst, f.err = parseDecimal(raw)
}

func (f *form) nullDecimal(label string, dst *decimal.NullDecimal) {
	current := ""
	if dst.Valid {
		current = dst.Decimal.String()
	}
	raw, skip := f.answer(label, current)
	if skip {
		return
	}
	if raw == "-" {
		*dst = decimal.NullDecimal{}
		return
	}
	var d decimal.Decimal
	if d, f.err = parseDecimal(raw); f.err == nil {
		*dst = decimal.NewNullDecimal(d)
	}
}

func (f *form) nullInt(label string, dst *sql.NullInt64) {
	current := ""
	if dst.Valid {
		current = fmt.Sprint(dst.Int64)
	}
	raw, skip := f.answer(label, current)
	if skip {
		return
	}
	if raw == "-" {
		*dst = sql.NullInt64{}
		return
	}
	var n int64
	if n, f.err = parseInt(raw); f.err == nil {
		*dst = sql.NullInt64{Int64: n, Valid: true}
	}
}

func (f *form) date(label string, dst *employee.Date) {
	current := ""
	if !dst.IsZero() {
		current = dst.String()
	}
	raw, skip := f.answer(label, current)
	if skip {
		return
	}
	d, err := employee.ParseDate(raw)
	if err != nil {
		f.err = errors.Wrapf(errors.ErrInvalidValue, "%q is not a date", raw)
		return
	}
	*dst = d
}

func parseInt(raw string) (int64, error) {
	v, err := builder.Coerce(builder.Integer, raw)
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	v, err := builder.Coerce(builder.Decimal, raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return v.(decimal.Decimal), nil
}
