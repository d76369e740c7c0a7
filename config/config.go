// Package config defines the runtime configuration for hangman and
// validates it before any mode is built.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	hmerr "hangman/internal/errors"
)

// Config holds every tuneable for one hangman process.
type Config struct {
	// ── Serving ──────────────────────────────────────────────────────
	Listen      bool          // serve games instead of playing locally
	Bind        string        // listen address (empty = all interfaces)
	LocalPort   int           // -p: listen port
	KeepOpen    bool          // serve many players, not just the first
	Timeout     time.Duration // per-connection deadline (0 = none)
	MaxSessions int           // concurrent games with KeepOpen

	// ── SSH ──────────────────────────────────────────────────────────
	SSH         bool   // serve over SSH instead of plain TCP
	HostKeyPath string // PEM private key; ephemeral when empty

	// ── Game ─────────────────────────────────────────────────────────
	Seed uint64 // word picker seed (0 = random)

	// ── Output ───────────────────────────────────────────────────────
	Verbose int
	Stats   bool // print metrics on exit from a serving mode
}

// Address returns the host:port a serving mode listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Bind, strconv.Itoa(c.LocalPort))
}

// ApplyDefaults fills in values that depend on other settings.
func (c *Config) ApplyDefaults() {
	if c.Listen && c.LocalPort == 0 {
		c.LocalPort = DefaultPort
	}
	if c.MaxSessions == 0 {
		c.MaxSessions = DefaultMaxSessions
	}
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Listen {
		if c.LocalPort < 1 || c.LocalPort > 65535 {
			return &hmerr.ConfigError{
				Field:   "port",
				Value:   c.LocalPort,
				Message: "out of range 1-65535",
				Hint:    fmt.Sprintf("omit -p to use %d", DefaultPort),
			}
		}
		if c.Bind != "" && net.ParseIP(c.Bind) == nil {
			return &hmerr.ConfigError{
				Field:   "bind",
				Value:   c.Bind,
				Message: "not an IP address",
			}
		}
	} else {
		switch {
		case c.SSH:
			return &hmerr.ConfigError{Field: "ssh", Message: "requires --listen"}
		case c.KeepOpen:
			return &hmerr.ConfigError{Field: "keep-open", Message: "requires --listen"}
		case c.Stats:
			return &hmerr.ConfigError{Field: "stats", Message: "requires --listen"}
		case c.LocalPort != 0:
			return &hmerr.ConfigError{
				Field:   "port",
				Value:   c.LocalPort,
				Message: "requires --listen",
				Hint:    "local play reads guesses from stdin",
			}
		}
	}

	if c.HostKeyPath != "" && !c.SSH {
		return &hmerr.ConfigError{
			Field:   "host-key",
			Value:   c.HostKeyPath,
			Message: "requires --ssh",
		}
	}

	if c.Timeout < 0 {
		return &hmerr.ConfigError{Field: "timeout", Value: c.Timeout, Message: "must not be negative"}
	}

	if c.MaxSessions < 0 {
		return &hmerr.ConfigError{Field: "max-sessions", Value: c.MaxSessions, Message: "must not be negative"}
	}

	return nil
}
