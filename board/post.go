package board

import (
	"fmt"
	"time"
)

// Post is an immutable board entry. No is empty until the post is saved.
type Post struct {
	no        string
	title     string
	content   string
	writer    string
	createdAt time.Time
}

// NewPost creates an unsaved post written at createdAt
func NewPost(title, content, writer string, createdAt time.Time) Post {
	return Post{
		title:     title,
		content:   content,
		writer:    writer,
		createdAt: createdAt,
	}
}

func (p Post) No() string           { return p.no }
func (p Post) Title() string        { return p.title }
func (p Post) Content() string      { return p.content }
func (p Post) Writer() string       { return p.writer }
func (p Post) CreatedAt() time.Time { return p.createdAt }

// WithNo returns a copy of p numbered no
func (p Post) WithNo(no string) Post {
	p.no = no
	return p
}

// WithContent returns a copy of p with new content; everything else is kept
func (p Post) WithContent(content string) Post {
	p.content = content
	return p
}

func (p Post) String() string {
	return fmt.Sprintf("[%s] %s by %s (%s)\n%s",
		p.no, p.title, p.writer, p.createdAt.Format(time.DateTime), p.content)
}
