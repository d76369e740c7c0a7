package core

import (
	"context"
	"io"
	"os"

	"hangman/internal/capability"
	"hangman/internal/session"
	"hangman/internal/terminal"
	"hangman/util"
)

// LocalMode plays a single game on the process's own terminal.
type LocalMode struct {
	Capability capability.Capability
	Logger     *util.Logger

	// Stdin/Stdout default to os.Stdin/os.Stdout when nil.
	Stdin  io.Reader
	Stdout io.Writer
}

func (m *LocalMode) stdin() io.Reader {
	if m.Stdin != nil {
		return m.Stdin
	}
	return os.Stdin
}

func (m *LocalMode) stdout() io.Writer {
	if m.Stdout != nil {
		return m.Stdout
	}
	return os.Stdout
}

// Run plays one game and returns once it is won, lost, or its input
// fails.
func (m *LocalMode) Run(ctx context.Context) error {
	in := m.stdin()
	if f, ok := in.(*os.File); ok && !terminal.IsTerminal(f) {
		m.Logger.Debug("stdin is not a terminal, reading guesses from %s", f.Name())
	}

	sess := session.New("local", in, m.stdout(), m.Logger)
	return m.Capability.Handle(ctx, sess)
}
