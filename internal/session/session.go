// Package session represents one player's connection: where guesses
// come from, where the board goes, and a logger tagged with the
// session's id.
//
// Capabilities operate on sessions, so a game does not need to know
// whether it is reading from os.Stdin, a TCP socket, an SSH channel or
// a test buffer.
package session

import (
	"io"

	"github.com/google/uuid"

	"hangman/util"
)

// Session encapsulates the runtime context for a single player.
type Session struct {
	ID     string
	Remote string // peer address, "local" for the process terminal
	Stdin  io.Reader
	Stdout io.Writer
	Logger *util.Logger
}

// New creates a Session with a fresh id bound to the given I/O pair.
// The logger is derived so every line it writes names the session.
func New(remote string, stdin io.Reader, stdout io.Writer, logger *util.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		ID:     id,
		Remote: remote,
		Stdin:  stdin,
		Stdout: stdout,
		Logger: logger.With("[" + ShortID(id) + "]"),
	}
}

// ShortID returns the first block of a UUID, enough to tell
// concurrent sessions apart in logs.
func ShortID(id string) string {
	if len(id) < 8 {
		return id
	}
	return id[:8]
}
