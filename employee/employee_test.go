package employee

import (
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/carlosnayan/hrmanager/internal/errors"
)

func validParams() Params {
	return Params{
		ID:          100,
		FirstName:   "Ann",
		LastName:    "Lee",
		Email:       "ALEE",
		PhoneNumber: "515.123.4567",
		JobID:       "IT_PROG",
		Salary:      decimal.NewFromInt(5000),
		ManagerID:   sql.NullInt64{Int64: 103, Valid: true},
	}
}

func TestNew(t *testing.T) {
	e, err := New(validParams())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if e.ID() != 100 || e.FullName() != "Ann Lee" || !e.Salary().Equal(decimal.NewFromInt(5000)) {
		t.Errorf("unexpected employee %s", e)
	}
	if e.Commission().Valid {
		t.Error("expected commission to be absent")
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero id", func(p *Params) { p.ID = 0 }},
		{"missing last name", func(p *Params) { p.LastName = "  " }},
		{"negative salary", func(p *Params) { p.Salary = decimal.NewFromInt(-1) }},
		{"negative commission", func(p *Params) { p.Commission = decimal.NewNullDecimal(decimal.RequireFromString("-0.1")) }},
		{"long job id", func(p *Params) { p.JobID = "WAY_TOO_LONG_JOB" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			if _, err := New(p); !errors.IsValidation(err) {
				t.Errorf("New() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestEmployee_WithCopies(t *testing.T) {
	original, err := New(validParams())
	if err != nil {
		t.Fatal(err)
	}

	raised := original.WithSalary(decimal.NewFromInt(6000)).WithFirstName("Anna")

	if !original.Salary().Equal(decimal.NewFromInt(5000)) || original.FirstName() != "Ann" {
		t.Error("With methods must not modify the receiver")
	}
	if !raised.Salary().Equal(decimal.NewFromInt(6000)) || raised.FirstName() != "Anna" {
		t.Errorf("unexpected copy %s", raised)
	}
	if raised.ID() != original.ID() {
		t.Error("identifier must be preserved")
	}
}

func TestEmployee_Equal(t *testing.T) {
	a, _ := New(validParams())
	p := validParams()
	p.Salary = decimal.RequireFromString("5000.00")
	b, _ := New(p)

	if !a.Equal(b) {
		t.Error("decimals with different scale should compare equal")
	}
	if a.Equal(b.WithCommission(decimal.NewNullDecimal(decimal.Zero))) {
		t.Error("absent and zero commission must differ")
	}
}
