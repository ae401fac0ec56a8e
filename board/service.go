package board

import (
	"strings"
	"time"

	"github.com/carlosnayan/hrmanager/builder"
	"github.com/carlosnayan/hrmanager/internal/errors"
	"github.com/carlosnayan/hrmanager/internal/logger"
)

type postInput struct {
	Title   string `validate:"required,max=100"`
	Content string `validate:"max=4000"`
	Writer  string `validate:"required,max=50"`
}

// Service is the board's use-case layer over a Store
type Service struct {
	store *Store
	now   func() time.Time
	log   *logger.Logger
}

// Option configures a Service
type Option func(*Service)

// WithClock replaces time.Now as the source of creation times
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLogger sets the service logger
func WithLogger(l *logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(store *Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
		log:   logger.GetDefaultLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates and saves a new post
func (s *Service) Create(title, content, writer string) (Post, error) {
	in := postInput{
		Title:   strings.TrimSpace(title),
		Content: content,
		Writer:  strings.TrimSpace(writer),
	}
	if err := builder.ValidateStruct(in); err != nil {
		return Post{}, err
	}

	p := s.store.Save(NewPost(in.Title, in.Content, in.Writer, s.now()))
	s.log.Info("post %s created by %s", p.No(), p.Writer())
	return p, nil
}

// List returns every post ordered by number
func (s *Service) List() []Post {
	return s.store.All()
}

// Get returns the post numbered no
func (s *Service) Get(no string) (Post, error) {
	p, ok := s.store.Find(strings.TrimSpace(no))
	if !ok {
		return Post{}, errors.NewNotFoundError("post " + no)
	}
	return p, nil
}

// UpdateContent replaces the content of post no. Title, writer and
// creation time are kept.
func (s *Service) UpdateContent(no, content string) error {
	p, err := s.Get(no)
	if err != nil {
		return err
	}
	if err := builder.ValidateStruct(postInput{Title: p.Title(), Content: content, Writer: p.Writer()}); err != nil {
		return err
	}
	if !s.store.Update(p.WithContent(content)) {
		return errors.NewNotFoundError("post " + no)
	}
	s.log.Info("post %s updated", p.No())
	return nil
}

// Delete removes post no
func (s *Service) Delete(no string) error {
	if !s.store.Delete(strings.TrimSpace(no)) {
		return errors.NewNotFoundError("post " + no)
	}
	s.log.Info("post %s deleted", no)
	return nil
}

// Clear removes every post
func (s *Service) Clear() {
	s.store.Clear()
	s.log.Info("board cleared")
}
