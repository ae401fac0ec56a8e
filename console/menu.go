package console

import (
	"context"
	stderrors "errors"
	"strconv"

	"github.com/carlosnayan/hrmanager/internal/errors"
)

// ErrExit is returned by a handler to leave its menu
var ErrExit = stderrors.New("exit")

// errEndOfInput stops a handler whose prompts ran out of input
var errEndOfInput = stderrors.New("end of input")

// Entry is one numbered menu line
type Entry struct {
	Label string
	Run   func(ctx context.Context) error
}

// Menu shows numbered entries and dispatches the chosen one until an entry
// returns ErrExit or the input ends. Handler errors are reported and the
// menu is shown again.
type Menu struct {
	Title   string
	Entries []Entry
	io      *IO
}

// NewMenu creates a menu that talks through io
func NewMenu(title string, io *IO, entries ...Entry) *Menu {
	return &Menu{Title: title, Entries: entries, io: io}
}

// Run loops until exit, end of input or ctx cancellation
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.show()
		answer, ok := m.io.Prompt("Select menu: ")
		if !ok {
			return nil
		}

		entry, found := m.choose(answer)
		if !found {
			m.io.Warn("Invalid choice, try again")
			continue
		}

		err := entry.Run(ctx)
		switch {
		case err == nil:
		case stderrors.Is(err, ErrExit):
			m.io.Info("exit")
			return nil
		case stderrors.Is(err, errEndOfInput):
			return nil
		default:
			m.io.Warn(Describe(err))
		}
	}
}

func (m *Menu) show() {
	m.io.Println()
	if m.Title != "" {
		m.io.Println(m.Title)
	}
	for i, e := range m.Entries {
		m.io.Printf("%d. %s\n", i+1, e.Label)
	}
}

func (m *Menu) choose(answer string) (Entry, bool) {
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(m.Entries) {
		return Entry{}, false
	}
	return m.Entries[n-1], true
}

// Describe renders err as a user-facing message by kind
func Describe(err error) string {
	switch {
	case errors.IsFieldNotAllowed(err):
		return "Field not allowed: " + err.Error()
	case errors.IsInvalidValue(err):
		return "Invalid value: " + err.Error()
	case errors.IsValidation(err):
		return "Invalid input: " + err.Error()
	case errors.IsNotFound(err):
		return "No matching records"
	case errors.IsUniqueConstraint(err):
		return "A record with that id already exists"
	case errors.IsConnection(err):
		return "Database not reachable, try again later"
	default:
		return "Operation failed: " + errors.SanitizeError(err).Error()
	}
}
