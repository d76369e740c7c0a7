package core

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"

	"hangman/internal/capability"
	hmerr "hangman/internal/errors"
	"hangman/internal/metrics"
	"hangman/internal/retry"
	"hangman/internal/session"
	"hangman/internal/terminal"
	"hangman/util"
)

// serverVersion is announced to SSH clients.
const serverVersion = "SSH-2.0-hangman"

// SSHMode serves games over SSH.  Anyone may connect; each shell
// request plays one game on a line-editing terminal.
type SSHMode struct {
	Address          string
	HostKeyPath      string // PEM private key; ephemeral ed25519 when empty
	HandshakeTimeout time.Duration
	KeepOpen         bool
	Timeout          time.Duration
	MaxSessions      int
	Play             *capability.Play
	Backoff          *retry.Backoff
	Metrics          *metrics.Collector
	Logger           *util.Logger

	// OnListen, if set, is called with the bound address once the
	// listener is open.
	OnListen func(net.Addr)
}

// Run loads the host key, starts listening and serves SSH clients.
func (m *SSHMode) Run(ctx context.Context) error {
	signer, err := m.hostKey()
	if err != nil {
		return err
	}

	cfg := &ssh.ServerConfig{
		NoClientAuth:  true,
		ServerVersion: serverVersion,
	}
	cfg.AddHostKey(signer)

	ln, err := listen(m.Address)
	if err != nil {
		return err
	}
	m.Logger.Verbose("listening on %s (ssh, host key %s)", ln.Addr(), ssh.FingerprintSHA256(signer.PublicKey()))

	srv := &server{
		keepOpen:    m.KeepOpen,
		timeout:     m.Timeout,
		maxSessions: m.MaxSessions,
		backoff:     m.Backoff,
		metrics:     m.Metrics,
		logger:      m.Logger,
		onListen:    m.OnListen,
	}
	return srv.serve(ctx, ln, func(ctx context.Context, conn net.Conn) error {
		return m.handleConn(ctx, conn, cfg)
	})
}

func (m *SSHMode) hostKey() (ssh.Signer, error) {
	if m.HostKeyPath != "" {
		signer, err := LoadHostKey(m.HostKeyPath)
		if err != nil {
			return nil, hmerr.WrapSSH("hostkey", "", err)
		}
		return signer, nil
	}
	m.Logger.Info("no --host-key given, using an ephemeral host key")
	signer, err := GenerateHostKey()
	if err != nil {
		return nil, hmerr.WrapSSH("hostkey", "", err)
	}
	return signer, nil
}

// handleConn completes the handshake and plays one game on the first
// session channel the client opens.
func (m *SSHMode) handleConn(ctx context.Context, conn net.Conn, cfg *ssh.ServerConfig) error {
	remote := util.RemoteAddr(conn)

	if m.HandshakeTimeout > 0 {
		conn.SetDeadline(time.Now().Add(m.HandshakeTimeout)) //nolint:errcheck
	}
	sconn, chans, reqs, err := ssh.NewServerConn(conn, cfg)
	if err != nil {
		return hmerr.WrapSSH("handshake", remote, err)
	}
	defer sconn.Close()

	deadline := time.Time{}
	if m.Timeout > 0 {
		deadline = time.Now().Add(m.Timeout)
	}
	conn.SetDeadline(deadline) //nolint:errcheck

	m.Logger.Verbose("ssh client %s (%s) as %q", remote, sconn.ClientVersion(), sconn.User())
	go ssh.DiscardRequests(reqs)

	for newCh := range chans {
		if newCh.ChannelType() != "session" {
			newCh.Reject(ssh.UnknownChannelType, "only session channels are supported") //nolint:errcheck
			continue
		}
		ch, requests, err := newCh.Accept()
		if err != nil {
			return hmerr.WrapSSH("channel", remote, err)
		}
		return m.playChannel(ctx, sconn, ch, requests)
	}
	return nil
}

// playChannel answers the pty/shell handshake on a session channel,
// then runs a game and reports its exit status.
func (m *SSHMode) playChannel(ctx context.Context, sconn *ssh.ServerConn, ch ssh.Channel, requests <-chan *ssh.Request) error {
	defer ch.Close()

	line := terminal.NewLine(ch)
	shell := make(chan struct{})
	gone := make(chan struct{})

	go func() {
		defer close(gone)
		var once sync.Once
		for req := range requests {
			ok := false
			switch req.Type {
			case "pty-req":
				var pty ptyRequest
				if ssh.Unmarshal(req.Payload, &pty) == nil {
					line.SetSize(int(pty.Columns), int(pty.Rows)) //nolint:errcheck
					ok = true
				}
			case "window-change":
				var wc windowChange
				if ssh.Unmarshal(req.Payload, &wc) == nil {
					line.SetSize(int(wc.Columns), int(wc.Rows)) //nolint:errcheck
					ok = true
				}
			case "shell":
				ok = true
				once.Do(func() { close(shell) })
			}
			if req.WantReply {
				req.Reply(ok, nil) //nolint:errcheck
			}
		}
	}()

	select {
	case <-shell:
	case <-gone:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}

	sess := session.New(sconn.RemoteAddr().String(), ch, ch, m.Logger)
	err := m.Play.Run(ctx, sess, line)

	var status exitStatus
	if err != nil {
		status.Code = 1
	}
	ch.SendRequest("exit-status", false, ssh.Marshal(&status)) //nolint:errcheck
	return err
}

// ── wire payloads (RFC 4254 §6.2, §6.7, §6.10) ───────────────────────

type ptyRequest struct {
	Term    string
	Columns uint32
	Rows    uint32
	Width   uint32
	Height  uint32
	Modes   string
}

type windowChange struct {
	Columns uint32
	Rows    uint32
	Width   uint32
	Height  uint32
}

type exitStatus struct {
	Code uint32
}

// ── host keys ────────────────────────────────────────────────────────

// LoadHostKey reads a PEM-encoded private key for the server to
// identify itself with.
func LoadHostKey(path string) (ssh.Signer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading host key: %w", err)
	}
	signer, err := ssh.ParsePrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("parsing host key %s: %w", path, err)
	}
	return signer, nil
}

// GenerateHostKey creates a fresh ed25519 host key that lives only as
// long as the process.
func GenerateHostKey() (ssh.Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating host key: %w", err)
	}
	return ssh.NewSignerFromKey(priv)
}
