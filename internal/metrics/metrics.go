// Package metrics provides lightweight, lock-free counters for a
// hangman server: sessions served, how games ended, guesses made.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime metrics for a hangman process.
// A nil Collector is safe to use; all methods become no-ops.
type Collector struct {
	sessionsActive  atomic.Int64
	sessionsTotal   atomic.Int64
	sessionsRefused atomic.Int64
	sessionsTimeout atomic.Int64
	gamesWon        atomic.Int64
	gamesLost       atomic.Int64
	gamesAbandoned  atomic.Int64
	guessesAccepted atomic.Int64
	guessesRejected atomic.Int64
	acceptRetries   atomic.Int64
	errorsTotal     atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Session metrics ──────────────────────────────────────────────────

// SessionOpened increments both the active and total counters.
func (c *Collector) SessionOpened() {
	if c == nil {
		return
	}
	c.sessionsActive.Add(1)
	c.sessionsTotal.Add(1)
}

// SessionClosed decrements the active session counter.
func (c *Collector) SessionClosed() {
	if c == nil {
		return
	}
	c.sessionsActive.Add(-1)
}

// SessionRefused records a connection turned away at capacity.
func (c *Collector) SessionRefused() {
	if c == nil {
		return
	}
	c.sessionsRefused.Add(1)
}

// SessionTimedOut records a session ended by its time limit.
func (c *Collector) SessionTimedOut() {
	if c == nil {
		return
	}
	c.sessionsTimeout.Add(1)
}

// ActiveSessions returns the number of games in progress.
func (c *Collector) ActiveSessions() int64 {
	if c == nil {
		return 0
	}
	return c.sessionsActive.Load()
}

// TotalSessions returns the lifetime session count.
func (c *Collector) TotalSessions() int64 {
	if c == nil {
		return 0
	}
	return c.sessionsTotal.Load()
}

// ── Game metrics ─────────────────────────────────────────────────────

// GameWon records a game that ended with the word revealed.
func (c *Collector) GameWon() {
	if c == nil {
		return
	}
	c.gamesWon.Add(1)
}

// GameLost records a game that ended with no lives left.
func (c *Collector) GameLost() {
	if c == nil {
		return
	}
	c.gamesLost.Add(1)
}

// GameAbandoned records a game cut short by its player's input failing.
func (c *Collector) GameAbandoned() {
	if c == nil {
		return
	}
	c.gamesAbandoned.Add(1)
}

// Guesses adds a finished game's accepted and rejected guess counts.
func (c *Collector) Guesses(accepted, rejected int) {
	if c == nil {
		return
	}
	c.guessesAccepted.Add(int64(accepted))
	c.guessesRejected.Add(int64(rejected))
}

// ── Server metrics ───────────────────────────────────────────────────

// AcceptRetry records a retried temporary accept failure.
func (c *Collector) AcceptRetry() {
	if c == nil {
		return
	}
	c.acceptRetries.Add(1)
}

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.errorsTotal.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// ErrorCount returns the total number of errors recorded.
func (c *Collector) ErrorCount() int64 {
	if c == nil {
		return 0
	}
	return c.errorsTotal.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Uptime           string `json:"uptime"`
	SessionsActive   int64  `json:"sessions_active"`
	SessionsTotal    int64  `json:"sessions_total"`
	SessionsRefused  int64  `json:"sessions_refused"`
	SessionsTimedOut int64  `json:"sessions_timed_out"`
	GamesWon         int64  `json:"games_won"`
	GamesLost        int64  `json:"games_lost"`
	GamesAbandoned   int64  `json:"games_abandoned"`
	GuessesAccepted  int64  `json:"guesses_accepted"`
	GuessesRejected  int64  `json:"guesses_rejected"`
	AcceptRetries    int64  `json:"accept_retries"`
	ErrorsTotal      int64  `json:"errors_total"`
	LastError        string `json:"last_error,omitempty"`
	LastErrorMessage string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:           time.Since(c.startTime).Truncate(time.Second).String(),
		SessionsActive:   c.sessionsActive.Load(),
		SessionsTotal:    c.sessionsTotal.Load(),
		SessionsRefused:  c.sessionsRefused.Load(),
		SessionsTimedOut: c.sessionsTimeout.Load(),
		GamesWon:         c.gamesWon.Load(),
		GamesLost:        c.gamesLost.Load(),
		GamesAbandoned:   c.gamesAbandoned.Load(),
		GuessesAccepted:  c.guessesAccepted.Load(),
		GuessesRejected:  c.guessesRejected.Load(),
		AcceptRetries:    c.acceptRetries.Load(),
		ErrorsTotal:      c.errorsTotal.Load(),
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
