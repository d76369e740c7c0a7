// Package core is the orchestration layer.  It composes listeners,
// terminals and capabilities into complete operational modes and
// provides a builder that selects the right mode from a Config.
//
// Architecture layers (bottom → top):
//
//	terminal  →  game  →  capability  →  session  →  core  →  cmd (CLI)
package core

import "context"

// Mode represents a complete operational mode of hangman (local play,
// TCP serving or SSH serving).  Each mode owns its full lifecycle from
// setup to teardown.
type Mode interface {
	Run(ctx context.Context) error
}
