package capability

import (
	"context"
	"fmt"

	"hangman/internal/game"
	"hangman/internal/metrics"
	"hangman/internal/session"
	"hangman/internal/terminal"
)

// Play runs one game of hangman per session.
type Play struct {
	Words   game.WordSource
	Metrics *metrics.Collector // optional
}

// Handle plays a game over the session's plain reader/writer pair.
func (p *Play) Handle(ctx context.Context, sess *session.Session) error {
	return p.Run(ctx, sess, terminal.NewConsole(sess.Stdin, sess.Stdout))
}

// Run plays a game on an already constructed terminal, records how it
// ended and returns the error that cut it short, if any.
func (p *Play) Run(ctx context.Context, sess *session.Session, term game.Terminal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g := game.New(p.Words)
	sess.Logger.Verbose("new game for %s, %d letters", sess.Remote, len([]rune(g.Word())))
	sess.Logger.Debug("secret word %q", g.Word())

	err := g.Run(term)

	accepted, rejected := g.Guesses()
	p.Metrics.Guesses(accepted, rejected)

	if err != nil {
		p.Metrics.GameAbandoned()
		return fmt.Errorf("game %s: %w", session.ShortID(sess.ID), err)
	}

	switch g.State() {
	case game.Won:
		p.Metrics.GameWon()
	case game.Lost:
		p.Metrics.GameLost()
	}
	sess.Logger.Verbose("game %s word=%s lives=%d guesses=%d", g.State(), g.Word(), g.Lives(), accepted)
	return nil
}
