package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/carlosnayan/hrmanager/internal/limits"
)

// IO reads answers line by line and writes prompts and results
type IO struct {
	in     *bufio.Scanner
	out    io.Writer
	colors palette
}

// NewIO wraps r and w. Colors are used only when w is a terminal.
func NewIO(r io.Reader, w io.Writer) *IO {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), limits.MaxInputLength)
	return &IO{
		in:     scanner,
		out:    w,
		colors: palette{enabled: supportsColor(w)},
	}
}

// Prompt prints message and returns the trimmed answer. ok is false once
// the input is exhausted.
func (c *IO) Prompt(message string) (answer string, ok bool) {
	fmt.Fprint(c.out, c.colors.prompt("? ")+message)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// Println writes a plain line
func (c *IO) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Printf writes formatted text
func (c *IO) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Success writes a confirmation line
func (c *IO) Success(message string) {
	fmt.Fprintln(c.out, c.colors.success(message))
}

// Warn writes an error line
func (c *IO) Warn(message string) {
	fmt.Fprintln(c.out, c.colors.warning(message))
}

// Info writes a secondary line
func (c *IO) Info(message string) {
	fmt.Fprintln(c.out, c.colors.info(message))
}
