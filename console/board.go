package console

import (
	"context"
	"strings"

	"github.com/carlosnayan/hrmanager/board"
)

type boardMenu struct {
	svc *board.Service
	io  *IO
}

// NewBoardMenu builds the in-memory board menu
func NewBoardMenu(svc *board.Service, io *IO) *Menu {
	m := &boardMenu{svc: svc, io: io}
	return NewMenu("Board", io,
		Entry{Label: "Create", Run: m.create},
		Entry{Label: "Read", Run: m.read},
		Entry{Label: "Clear", Run: m.clear},
		Entry{Label: "Exit", Run: exit},
	)
}

func (m *boardMenu) create(context.Context) error {
	title, err := ask(m.io, "Title: ")
	if err != nil {
		return err
	}
	content, err := ask(m.io, "Content: ")
	if err != nil {
		return err
	}
	writer, err := ask(m.io, "Writer: ")
	if err != nil {
		return err
	}

	p, err := m.svc.Create(title, content, writer)
	if err != nil {
		return err
	}
	m.io.Success("Created post " + p.No())
	return nil
}

// read lists the posts, then optionally updates or deletes one of them
func (m *boardMenu) read(context.Context) error {
	posts := m.svc.List()
	if len(posts) == 0 {
		m.io.Info("No posts")
	}
	for _, p := range posts {
		m.io.Println(p.String())
		m.io.Println()
	}

	no, err := ask(m.io, "Post number to update or delete (blank to go back): ")
	if err != nil || no == "" {
		return err
	}
	if _, err := m.svc.Get(no); err != nil {
		return err
	}

	action, err := ask(m.io, "u = update, d = delete, anything else = back: ")
	if err != nil {
		return err
	}
	switch strings.ToLower(action) {
	case "u":
		content, err := ask(m.io, "New content: ")
		if err != nil {
			return err
		}
		if err := m.svc.UpdateContent(no, content); err != nil {
			return err
		}
		m.io.Success("Updated")
	case "d":
		if err := m.svc.Delete(no); err != nil {
			return err
		}
		m.io.Success("Deleted")
	}
	return nil
}

func (m *boardMenu) clear(context.Context) error {
	m.svc.Clear()
	m.io.Success("Cleared")
	return nil
}
