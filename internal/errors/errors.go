// Package errors provides domain-specific error types for hangman.
//
// These types carry structured context (operation, address, field) so
// callers can tell a broken terminal from a bad flag or a flaky listener
// and report each one properly.
package errors

import (
	"errors"
	"fmt"
	"net"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrEmptyWordList = errors.New("word list is empty")
	ErrInputClosed   = errors.New("input closed")
	ErrServerBusy    = errors.New("server busy")
	ErrTimeout       = errors.New("timed out")
)

// ── Structured error types ───────────────────────────────────────────

// InputError reports a failed read from the player's terminal.  It is
// fatal for the game it happened in.
type InputError struct {
	Op  string // "guess", "acknowledge"
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("error reading input (%s): %v", e.Op, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// NetworkError represents a failure in a network operation.
type NetworkError struct {
	Op        string // operation: "listen", "accept", "handshake"
	Addr      string // network address involved
	Err       error  // underlying error
	Retryable bool   // whether the caller should retry
}

func (e *NetworkError) Error() string {
	s := fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
	if e.Retryable {
		s += " (retryable)"
	}
	return s
}

func (e *NetworkError) Unwrap() error { return e.Err }

// SSHError represents an SSH-specific failure with peer context.
type SSHError struct {
	Op     string // "hostkey", "handshake", "channel"
	Remote string
	Err    error
}

func (e *SSHError) Error() string {
	if e.Remote == "" {
		return fmt.Sprintf("ssh %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("ssh %s %s: %v", e.Op, e.Remote, e.Err)
}

func (e *SSHError) Unwrap() error { return e.Err }

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// ── Constructors ─────────────────────────────────────────────────────

// Input wraps a terminal read failure.
func Input(op string, err error) *InputError {
	return &InputError{Op: op, Err: err}
}

// Wrap creates a NetworkError, automatically detecting retryability
// from the underlying error.
func Wrap(op, addr string, err error) *NetworkError {
	return &NetworkError{
		Op:        op,
		Addr:      addr,
		Err:       err,
		Retryable: classifyRetryable(err),
	}
}

// WrapSSH creates an SSHError.
func WrapSSH(op, remote string, err error) *SSHError {
	return &SSHError{Op: op, Remote: remote, Err: err}
}

// ── Classification helpers ───────────────────────────────────────────

// IsInput reports whether err came from reading the player's input.
func IsInput(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// IsRetryable reports whether err is worth retrying.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.Retryable
	}
	return classifyRetryable(err)
}

// classifyRetryable inspects standard library error types.
func classifyRetryable(err error) bool {
	if err == nil {
		return false
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Temporary() //nolint:staticcheck // still the only accept-loop signal
	}
	return false
}

// ── Re-exports for convenience ───────────────────────────────────────

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
