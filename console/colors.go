package console

import (
	"io"
	"os"
)

const (
	reset = "\033[0m"
	gray  = "\033[90m"
	cyan  = "\033[36m"
	red   = "\033[31m"
	green = "\033[32m"
)

// supportsColor reports whether w is a terminal that takes ANSI colors
func supportsColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

type palette struct {
	enabled bool
}

func (p palette) paint(color, text string) string {
	if !p.enabled {
		return text
	}
	return color + text + reset
}

func (p palette) info(text string) string    { return p.paint(gray, text) }
func (p palette) prompt(text string) string  { return p.paint(cyan, text) }
func (p palette) warning(text string) string { return p.paint(red, text) }
func (p palette) success(text string) string { return p.paint(green, text) }
