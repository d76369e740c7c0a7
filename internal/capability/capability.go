// Package capability defines what happens over an established player
// session.  A Capability operates on a Session rather than a raw
// net.Conn, which keeps it testable and independent of whether the
// player is local, on a TCP socket or on an SSH channel.
package capability

import (
	"context"

	"hangman/internal/session"
)

// Capability handles a single session.
type Capability interface {
	// Handle runs the capability against the given session.  It
	// blocks until the session is done.
	Handle(ctx context.Context, sess *session.Session) error
}
