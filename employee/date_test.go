package employee

import (
	"testing"
	"time"
)

func TestDate_Scan(t *testing.T) {
	want := NewDate(2024, time.March, 5)

	sources := []any{
		time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 5, 23, 30, 0, 0, time.FixedZone("KST", 9*3600)),
		"2024-03-05",
		[]byte("2024-03-05 00:00:00"),
		"2024-03-05T00:00:00Z",
	}

	for _, src := range sources {
		var d Date
		if err := d.Scan(src); err != nil {
			t.Errorf("Scan(%v) error = %v", src, err)
			continue
		}
		if d != want {
			t.Errorf("Scan(%v) = %s, want %s", src, d, want)
		}
	}

	var d Date
	if err := d.Scan(nil); err != nil || !d.IsZero() {
		t.Errorf("Scan(nil) = %v, %v", d, err)
	}
	if err := d.Scan(int64(20240305)); err == nil {
		t.Error("expected error scanning int64")
	}
	if err := d.Scan("05/03/2024"); err == nil {
		t.Error("expected error scanning malformed text")
	}
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(1999, time.December, 31).Value()
	if err != nil || v != "1999-12-31" {
		t.Errorf("Value() = %v, %v", v, err)
	}

	v, err = Date{}.Value()
	if err != nil || v != nil {
		t.Errorf("zero Value() = %v, %v, want nil", v, err)
	}
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2024, time.January, 31)
	b := NewDate(2024, time.February, 1)

	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Error("unexpected Before results")
	}
	if a.Compare(a) != 0 || a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Error("unexpected Compare results")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2020-02-29")
	if err != nil || d != NewDate(2020, time.February, 29) {
		t.Errorf("ParseDate() = %v, %v", d, err)
	}
	if _, err := ParseDate("2021-02-29"); err == nil {
		t.Error("expected error for invalid day")
	}
}
