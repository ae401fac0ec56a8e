package cmd

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/carlosnayan/hrmanager/internal/config"
)

func withConsole(t *testing.T, input string) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	oldIn, oldOut := stdin, stdout
	stdin, stdout = strings.NewReader(input), &out
	t.Cleanup(func() { stdin, stdout = oldIn, oldOut })
	return &out
}

func TestInit_WritesLoadableConfig(t *testing.T) {
	chdir(t, t.TempDir())
	out := withConsole(t, "")

	err := Execute(context.Background(), []string{"init", "--provider", "sqlite", "--database", "sqlite:./hr.db"})
	if err != nil {
		t.Fatalf("Execute(init) error = %v", err)
	}
	if !strings.Contains(out.String(), "Created "+config.FileName) {
		t.Errorf("output = %q", out.String())
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	if cfg.Datasource.Provider != "sqlite" || cfg.Datasource.URL != "sqlite:./hr.db" {
		t.Errorf("datasource = %+v", cfg.Datasource)
	}

	if err := Execute(context.Background(), []string{"init", "--provider", "sqlite"}); err == nil {
		t.Error("expected init to refuse overwriting without --force")
	}
	if err := Execute(context.Background(), []string{"init", "--provider", "mysql", "--force"}); err != nil {
		t.Errorf("Execute(init --force) error = %v", err)
	}
}

func TestInit_UsesEnvURLByDefault(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_URL", "postgresql://u:p@localhost:5432/hr")
	withConsole(t, "2\n")

	if err := Execute(context.Background(), []string{"init"}); err != nil {
		t.Fatalf("Execute(init) error = %v", err)
	}

	data, err := os.ReadFile(config.FileName)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `provider = "mysql"`) || !strings.Contains(string(data), `env('DATABASE_URL')`) {
		t.Errorf("unexpected config:\n%s", data)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	if cfg.GetDatabaseURL() != "postgresql://u:p@localhost:5432/hr" {
		t.Errorf("GetDatabaseURL() = %q", cfg.GetDatabaseURL())
	}
}

func TestPromptForProvider(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"\n", "postgresql"},
		{"1\n", "postgresql"},
		{"2\n", "mysql"},
		{"sqlite\n", "sqlite"},
		{"oracle\n", "postgresql"},
		{"", "postgresql"},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		if got := promptForProvider(strings.NewReader(tt.input), &out); got != tt.want {
			t.Errorf("promptForProvider(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBoardCommand(t *testing.T) {
	out := withConsole(t, "1\nHello\nworld\nkim\n2\n\n4\n")

	if err := Execute(context.Background(), []string{"board"}); err != nil {
		t.Fatalf("Execute(board) error = %v", err)
	}
	for _, want := range []string{"Created post 1", "Hello by kim", "world"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestEmployeesCommand_MissingConfig(t *testing.T) {
	chdir(t, t.TempDir())
	withConsole(t, "")

	if err := Execute(context.Background(), []string{"--config", "missing.conf", "employees"}); err == nil {
		t.Error("expected an error without a configuration file")
	}
}

func TestLogLevels(t *testing.T) {
	verbose = false
	if got := logLevels([]string{"error"}); len(got) != 1 {
		t.Errorf("logLevels() = %v", got)
	}
	verbose = true
	defer func() { verbose = false }()
	if got := strings.Join(logLevels([]string{"error"}), ","); got != "error,query,info" {
		t.Errorf("logLevels() verbose = %v", got)
	}
}
