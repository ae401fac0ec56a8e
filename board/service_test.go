package board

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/carlosnayan/hrmanager/internal/errors"
	"github.com/carlosnayan/hrmanager/internal/logger"
)

func newTestService() *Service {
	return NewService(NewStore(),
		WithClock(func() time.Time { return written }),
		WithLogger(logger.NewLogger(nil, nil)),
	)
}

func TestService_Create(t *testing.T) {
	s := newTestService()

	p, err := s.Create("  Hello ", "first post", " kim ")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.No() != "1" || p.Title() != "Hello" || p.Writer() != "kim" {
		t.Errorf("Create() = %+v", p)
	}
	if !p.CreatedAt().Equal(written) {
		t.Errorf("CreatedAt() = %v, want %v", p.CreatedAt(), written)
	}
}

func TestService_CreateValidation(t *testing.T) {
	tests := []struct {
		name          string
		title, writer string
	}{
		{"empty title", "", "kim"},
		{"blank title", "   ", "kim"},
		{"empty writer", "Hello", ""},
		{"long title", strings.Repeat("x", 101), "kim"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService()
			if _, err := s.Create(tt.title, "content", tt.writer); !errors.IsValidation(err) {
				t.Errorf("Create() error = %v, want ErrValidation", err)
			}
			if len(s.List()) != 0 {
				t.Error("invalid post must not be stored")
			}
		})
	}
}

func TestService_UpdateContentKeepsOtherFields(t *testing.T) {
	s := newTestService()
	p, _ := s.Create("Hello", "old", "kim")

	if err := s.UpdateContent(p.No(), "new"); err != nil {
		t.Fatalf("UpdateContent() error = %v", err)
	}
	got, err := s.Get(p.No())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Content() != "new" || got.Title() != "Hello" || got.Writer() != "kim" || !got.CreatedAt().Equal(written) {
		t.Errorf("Get() after update = %+v", got)
	}

	err = s.UpdateContent("42", "x")
	if !errors.IsNotFound(err) {
		t.Errorf("UpdateContent() of missing post error = %v, want ErrNotFound", err)
	}
	if !errors.ProductionMode && !strings.Contains(err.Error(), "post 42") {
		t.Errorf("UpdateContent() error = %q, want it to name the post", err.Error())
	}
}

func TestService_DeleteAndClear(t *testing.T) {
	s := newTestService()
	p, _ := s.Create("a", "", "kim")
	s.Create("b", "", "kim")

	if err := s.Delete(p.No()); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := s.Delete(p.No()); !errors.IsNotFound(err) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
	if _, err := s.Get(p.No()); !errors.IsNotFound(err) {
		t.Errorf("Get() after delete error = %v", err)
	}

	s.Clear()
	if len(s.List()) != 0 {
		t.Errorf("List() after Clear = %v", s.List())
	}
}

func TestService_LogsChanges(t *testing.T) {
	var buf bytes.Buffer
	s := NewService(NewStore(), WithLogger(logger.NewLogger([]string{"info"}, &buf)))

	s.Create("Hello", "", "kim")
	if !strings.Contains(buf.String(), "post 1 created by kim") {
		t.Errorf("expected create to be logged, got %s", buf.String())
	}
}
