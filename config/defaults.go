package config

import "time"

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags, .env files and environment variable loading.

const (
	// DefaultPort is the port served games listen on when -p is not
	// given together with --listen.
	DefaultPort = 2323

	// DefaultMaxSessions bounds concurrent games in keep-open mode.
	DefaultMaxSessions = 64

	// DefaultDotEnv is the file overlaid onto the environment at start.
	DefaultDotEnv = ".env"

	// DefaultAcceptAttempts is how many times a temporary accept
	// failure is retried before the server gives up.
	DefaultAcceptAttempts = 8

	// DefaultAcceptBackoff is the first delay after a temporary accept
	// failure.
	DefaultAcceptBackoff = 5 * time.Millisecond

	// DefaultMaxAcceptBackoff caps the delay between accept retries.
	DefaultMaxAcceptBackoff = time.Second

	// DefaultHandshakeTimeout bounds the SSH handshake of one client.
	DefaultHandshakeTimeout = 10 * time.Second
)
