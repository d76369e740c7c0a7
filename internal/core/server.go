package core

import (
	"context"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	hmerr "hangman/internal/errors"
	"hangman/internal/metrics"
	"hangman/internal/retry"
	"hangman/util"
)

// busyMessage is written to connections refused at capacity.
const busyMessage = "server busy, try again later\n"

// connHandler serves one accepted connection.
type connHandler func(ctx context.Context, conn net.Conn) error

// server is the accept loop shared by the TCP and SSH modes.
//
// Without keepOpen it serves the first connection and returns.  With
// it, each connection runs on its own goroutine and at most
// maxSessions run at once (0 = unlimited).  Cancelling the context
// closes the listener and every open connection.
type server struct {
	keepOpen    bool
	timeout     time.Duration
	maxSessions int
	backoff     *retry.Backoff
	metrics     *metrics.Collector
	logger      *util.Logger
	onListen    func(net.Addr)
}

func (s *server) serve(ctx context.Context, ln net.Listener, handle connHandler) error {
	defer ln.Close()

	if s.onListen != nil {
		s.onListen(ln.Addr())
	}

	// Shut the listener down when the context expires.
	stop := context.AfterFunc(ctx, func() { ln.Close() })
	defer stop()

	var slots chan struct{}
	if s.keepOpen && s.maxSessions > 0 {
		slots = make(chan struct{}, s.maxSessions)
	}

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		conn, err := s.accept(ctx, ln)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		if !s.keepOpen {
			s.serveConn(ctx, conn, handle)
			return nil
		}

		if !acquire(slots) {
			s.refuse(conn)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer release(slots)
			s.serveConn(ctx, conn, handle)
		}()
	}
}

// accept waits for the next connection, retrying temporary failures
// with backoff.
func (s *server) accept(ctx context.Context, ln net.Listener) (net.Conn, error) {
	b := s.backoff
	if b == nil {
		b = &retry.Backoff{MaxAttempts: 1}
	}

	var conn net.Conn
	err := b.Do(ctx, func(_ int) error {
		c, err := ln.Accept()
		if err != nil {
			nerr := hmerr.Wrap("accept", ln.Addr().String(), err)
			if ctx.Err() != nil || !hmerr.IsRetryable(nerr) {
				return retry.Permanent(nerr)
			}
			return nerr
		}
		conn = c
		return nil
	})
	return conn, err
}

func (s *server) serveConn(ctx context.Context, conn net.Conn, handle connHandler) {
	defer conn.Close()

	// Unblock a pending read when the server shuts down.
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	if s.timeout > 0 {
		conn.SetDeadline(time.Now().Add(s.timeout)) //nolint:errcheck
	}

	s.metrics.SessionOpened()
	defer s.metrics.SessionClosed()

	remote := util.RemoteAddr(conn)
	s.logger.Verbose("connection from %s", remote)

	err := handle(ctx, conn)
	switch {
	case err == nil:
		s.logger.Verbose("connection from %s finished", remote)
	case ctx.Err() != nil:
		s.logger.Verbose("connection from %s closed on shutdown", remote)
	case hmerr.Is(err, hmerr.ErrTimeout):
		s.metrics.SessionTimedOut()
		s.logger.Info("%s timed out after %v", remote, s.timeout)
	case hmerr.IsInput(err):
		// Players hanging up mid-game is routine.
		s.logger.Info("%s left: %v", remote, err)
	default:
		s.metrics.RecordError(err.Error())
		s.logger.Warn("%s: %v", remote, err)
	}
}

func (s *server) refuse(conn net.Conn) {
	defer conn.Close()
	s.metrics.SessionRefused()
	s.logger.Warn("refusing %s: %v (%d sessions)", util.RemoteAddr(conn), hmerr.ErrServerBusy, s.maxSessions)
	conn.SetWriteDeadline(time.Now().Add(time.Second)) //nolint:errcheck
	io.WriteString(conn, busyMessage)                  //nolint:errcheck
}

// acquire takes a session slot.  A nil slots channel means unlimited.
func acquire(slots chan struct{}) bool {
	if slots == nil {
		return true
	}
	select {
	case slots <- struct{}{}:
		return true
	default:
		return false
	}
}

func release(slots chan struct{}) {
	if slots != nil {
		<-slots
	}
}

// listen opens a TCP listener on address.
func listen(address string) (net.Listener, error) {
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", address, err)
	}
	return ln, nil
}
