package core

import (
	"context"
	"net"
	"time"

	"hangman/internal/capability"
	"hangman/internal/metrics"
	"hangman/internal/retry"
	"hangman/internal/session"
	"hangman/util"
)

// ListenMode serves games over plain TCP, one game per connection.
// Players connect with nc or telnet.
type ListenMode struct {
	Address     string // "host:port"
	KeepOpen    bool
	Timeout     time.Duration
	MaxSessions int
	Capability  capability.Capability
	Backoff     *retry.Backoff
	Metrics     *metrics.Collector
	Logger      *util.Logger

	// OnListen, if set, is called with the bound address once the
	// listener is open.
	OnListen func(net.Addr)
}

// Run starts listening and plays a game on every accepted connection.
func (m *ListenMode) Run(ctx context.Context) error {
	ln, err := listen(m.Address)
	if err != nil {
		return err
	}
	m.Logger.Verbose("listening on %s (tcp)", ln.Addr())

	srv := &server{
		keepOpen:    m.KeepOpen,
		timeout:     m.Timeout,
		maxSessions: m.MaxSessions,
		backoff:     m.Backoff,
		metrics:     m.Metrics,
		logger:      m.Logger,
		onListen:    m.OnListen,
	}
	return srv.serve(ctx, ln, m.handle)
}

func (m *ListenMode) handle(ctx context.Context, conn net.Conn) error {
	sess := session.New(util.RemoteAddr(conn), conn, conn, m.Logger)
	return m.Capability.Handle(ctx, sess)
}
