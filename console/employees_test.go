package console

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/carlosnayan/hrmanager/employee"
	"github.com/carlosnayan/hrmanager/internal/errors"
)

// recordingStore answers from a fixed employee and records the calls
type recordingStore struct {
	known   employee.Employee
	calls   []string
	args    [][]string
	updated employee.Employee
}

func (s *recordingStore) record(name string, args ...string) {
	s.calls = append(s.calls, name)
	s.args = append(s.args, args)
}

func (s *recordingStore) FindBy(ctx context.Context, field, raw string) ([]employee.Employee, error) {
	s.record("FindBy", field, raw)
	if _, err := employee.ParseField(field); err != nil {
		return nil, err
	}
	if raw != "100" {
		return nil, errors.Wrapf(errors.ErrNotFound, "none")
	}
	return []employee.Employee{s.known}, nil
}

func (s *recordingStore) FindByDateRange(ctx context.Context, start, end employee.Date) ([]employee.Employee, error) {
	s.record("FindByDateRange", start.String(), end.String())
	return []employee.Employee{s.known}, nil
}

func (s *recordingStore) LoadAll(ctx context.Context) ([]employee.Employee, error) {
	s.record("LoadAll")
	return []employee.Employee{s.known}, nil
}

func (s *recordingStore) Insert(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	s.record("Insert", e.String())
	return e, nil
}

func (s *recordingStore) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	s.record("Update", e.String())
	s.updated = e
	return e, nil
}

func (s *recordingStore) UpdateWhereEquals(ctx context.Context, field, oldRaw, newRaw string) ([]employee.Employee, error) {
	s.record("UpdateWhereEquals", field, oldRaw, newRaw)
	return []employee.Employee{s.known}, nil
}

func (s *recordingStore) UpdateName(ctx context.Context, oldFullName, newFirst, newLast string) ([]employee.Employee, error) {
	s.record("UpdateName", oldFullName, newFirst, newLast)
	return []employee.Employee{s.known}, nil
}

func (s *recordingStore) Delete(ctx context.Context, id int64) (bool, error) {
	s.record("Delete")
	return id == 100, nil
}

func newRecordingStore(t *testing.T) *recordingStore {
	t.Helper()
	e, err := employee.New(employee.Params{
		ID:        100,
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ALEE",
		JobID:     "IT_PROG",
		Salary:    decimal.NewFromInt(5000),
	})
	if err != nil {
		t.Fatalf("employee.New() error = %v", err)
	}
	return &recordingStore{known: e}
}

func runEmployeeMenu(t *testing.T, store EmployeeStore, input string) string {
	t.Helper()
	io, out := newTestIO(input)
	if err := NewEmployeeMenu(store, io).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func TestEmployeeMenu_SearchRejectedFieldKeepsRunning(t *testing.T) {
	store := newRecordingStore(t)
	out := runEmployeeMenu(t, store, "1\npassword\nx\n1\nlast_name\n100\n9\n")

	if !strings.Contains(out, "Field not allowed") {
		t.Errorf("expected rejected field message:\n%s", out)
	}
	if !strings.Contains(out, "Ann\tLee") {
		t.Errorf("expected second search to print Ann:\n%s", out)
	}
	if len(store.calls) != 2 {
		t.Errorf("calls = %v", store.calls)
	}
}

func TestEmployeeMenu_SearchRange(t *testing.T) {
	store := newRecordingStore(t)
	out := runEmployeeMenu(t, store, "2\n2020-01-01\nnot-a-date\n2\n2020-01-01\n2020-12-31\n9\n")

	if !strings.Contains(out, "Invalid value") {
		t.Errorf("expected invalid date message:\n%s", out)
	}
	if len(store.calls) != 1 || store.args[0][0] != "2020-01-01" || store.args[0][1] != "2020-12-31" {
		t.Errorf("calls = %v %v", store.calls, store.args)
	}
}

func TestEmployeeMenu_Add(t *testing.T) {
	store := newRecordingStore(t)
	input := strings.Join([]string{
		"4",
		"101", "Bob", "Kim", "BKIM", "", "", "SA_REP", "7000.50", "0.2", "100", "80",
		"9",
	}, "\n") + "\n"
	out := runEmployeeMenu(t, store, input)

	if len(store.calls) != 1 || store.calls[0] != "Insert" {
		t.Fatalf("calls = %v\n%s", store.calls, out)
	}
	for _, want := range []string{"101", "Bob", "Kim", "SA_REP", "7000.5", "0.2", "100", "80"} {
		if !strings.Contains(store.args[0][0], want) {
			t.Errorf("inserted %q missing %q", store.args[0][0], want)
		}
	}
	if !strings.Contains(out, "Added") {
		t.Errorf("expected confirmation:\n%s", out)
	}
}

func TestEmployeeMenu_AddInvalidNumberIssuesNoInsert(t *testing.T) {
	store := newRecordingStore(t)
	input := strings.Join([]string{
		"4",
		"101", "Bob", "Kim", "BKIM", "", "", "SA_REP", "lots",
		"9",
	}, "\n") + "\n"
	out := runEmployeeMenu(t, store, input)

	if len(store.calls) != 0 {
		t.Errorf("calls = %v", store.calls)
	}
	if !strings.Contains(out, "Invalid value") {
		t.Errorf("expected invalid value message:\n%s", out)
	}
}

func TestEmployeeMenu_UpdateKeepsBlankAnswers(t *testing.T) {
	store := newRecordingStore(t)
	input := strings.Join([]string{
		"5", "100",
		"", "", "", "", "", "IT_MGR", "8000", "", "", "",
		"9",
	}, "\n") + "\n"
	runEmployeeMenu(t, store, input)

	if len(store.calls) != 2 || store.calls[1] != "Update" {
		t.Fatalf("calls = %v", store.calls)
	}
	got := store.updated
	if got.ID() != 100 || got.FirstName() != "Ann" || got.JobID() != "IT_MGR" || !got.Salary().Equal(decimal.NewFromInt(8000)) {
		t.Errorf("updated = %s", got)
	}
}

func TestEmployeeMenu_RenameUpdateByAndDelete(t *testing.T) {
	store := newRecordingStore(t)
	input := "6\nAnn Lee\nAnna\nPark\n7\nsalary\n5000\n6000\n8\n100\n8\n555\n3\n9\n"
	out := runEmployeeMenu(t, store, input)

	want := []string{"UpdateName", "UpdateWhereEquals", "Delete", "Delete", "LoadAll"}
	if strings.Join(store.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", store.calls, want)
	}
	if got := strings.Join(store.args[1], ","); got != "salary,5000,6000" {
		t.Errorf("UpdateWhereEquals args = %s", got)
	}
	if !strings.Contains(out, "Deleted") || !strings.Contains(out, "No employee with id 555") {
		t.Errorf("unexpected delete output:\n%s", out)
	}
}
