package board

import (
	"slices"
	"strconv"
	"sync"
)

// Store keeps posts in memory keyed by number. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	posts map[string]Post
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{posts: make(map[string]Post)}
}

// Save stores p. A post without a number gets the lowest positive integer
// not already in use.
func (s *Store) Save(p Post) Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.No() == "" {
		p = p.WithNo(s.nextNo())
	}
	s.posts[p.No()] = p
	return p
}

func (s *Store) nextNo() string {
	for candidate := 1; ; candidate++ {
		no := strconv.Itoa(candidate)
		if _, taken := s.posts[no]; !taken {
			return no
		}
	}
}

// All returns every post ordered by number
func (s *Store) All() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Post) int {
		return compareNo(a.No(), b.No())
	})
	return out
}

// compareNo orders numeric numbers by value, before any non-numeric ones
func compareNo(a, b string) int {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		return ai - bi
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Find returns the post numbered no
func (s *Store) Find(no string) (Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[no]
	return p, ok
}

// Update replaces the stored post with p's number. It reports false and
// stores nothing when no such post exists.
func (s *Store) Update(p Post) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[p.No()]; !ok {
		return false
	}
	s.posts[p.No()] = p
	return true
}

// Delete removes the post numbered no and reports whether it existed
func (s *Store) Delete(no string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[no]; !ok {
		return false
	}
	delete(s.posts, no)
	return true
}

// Clear removes every post
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.posts)
}

// Len returns the number of stored posts
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}
