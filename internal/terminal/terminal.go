// Package terminal adapts byte streams to the line-oriented screen a
// game talks to: read one line, write text, clear the screen.
package terminal

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	hmerr "hangman/internal/errors"
)

// ClearScreen erases the display and moves the cursor to the top left.
const ClearScreen = "\x1b[2J\x1b[H"

// MaxLineLength caps how many bytes of one line a Console keeps.  The
// rest of an over-long line is read and discarded.
const MaxLineLength = 4096

// Console is a terminal over a plain reader/writer pair such as the
// process stdin/stdout or a TCP connection.
type Console struct {
	r *bufio.Reader
	w io.Writer
}

// NewConsole returns a Console reading lines from r and writing to w.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{r: bufio.NewReader(r), w: w}
}

// ReadLine returns the next line without its "\n" or "\r\n".  A final
// line without a terminator is returned as-is; after that, end of input
// is reported as [hmerr.ErrInputClosed].  Lines longer than
// [MaxLineLength] are truncated.  An expired read deadline is reported
// as [hmerr.ErrTimeout].
func (c *Console) ReadLine() (string, error) {
	var line []byte
	for {
		chunk, err := c.r.ReadSlice('\n')
		if room := MaxLineLength - len(line); room > 0 {
			line = append(line, chunk[:min(len(chunk), room)]...)
		}
		switch {
		case err == nil:
			return trimEOL(line), nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case err == io.EOF:
			if len(line) > 0 {
				return string(line), nil
			}
			return "", hmerr.ErrInputClosed
		default:
			return "", readError(err)
		}
	}
}

func trimEOL(line []byte) string {
	s := strings.TrimSuffix(string(line), "\n")
	return strings.TrimSuffix(s, "\r")
}

// readError maps an expired deadline to [hmerr.ErrTimeout].
func readError(err error) error {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return hmerr.ErrTimeout
	}
	return err
}

// Write implements io.Writer.
func (c *Console) Write(p []byte) (int, error) { return c.w.Write(p) }

// Clear emits the ANSI clear-screen sequence.
func (c *Console) Clear() error {
	_, err := io.WriteString(c.w, ClearScreen)
	return err
}

// Line is a terminal over a raw, unbuffered channel such as an SSH
// session.  It relies on x/term for echo, line editing and "\r\n"
// translation, which a remote pty expects the server to provide.
type Line struct {
	t *term.Terminal
}

// NewLine wraps rw in a line-editing terminal.
func NewLine(rw io.ReadWriter) *Line {
	return &Line{t: term.NewTerminal(rw, "")}
}

// ReadLine returns the next line typed by the player.  Ctrl-C, and
// Ctrl-D on an empty line, are reported as [hmerr.ErrInputClosed].
func (l *Line) ReadLine() (string, error) {
	line, err := l.t.ReadLine()
	if err == io.EOF {
		return "", hmerr.ErrInputClosed
	}
	if err != nil {
		return "", readError(err)
	}
	return line, nil
}

// Write implements io.Writer.
func (l *Line) Write(p []byte) (int, error) { return l.t.Write(p) }

// Clear emits the ANSI clear-screen sequence.
func (l *Line) Clear() error {
	_, err := io.WriteString(l.t, ClearScreen)
	return err
}

// SetSize records the remote window size so line editing wraps
// correctly.
func (l *Line) SetSize(width, height int) error {
	return l.t.SetSize(width, height)
}

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f interface{ Fd() uintptr }) bool {
	return term.IsTerminal(int(f.Fd()))
}
