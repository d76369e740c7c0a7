package game

import (
	"fmt"
	"io"
	"strings"

	hmerr "hangman/internal/errors"
)

// Prompts written to the player.
const (
	PromptLetter   = "Enter letter:"
	MsgTooMany     = "Too many letters!"
	PromptContinue = "Press <Enter> key to continue..."
)

// Terminal is what a game needs from the player's screen and keyboard.
type Terminal interface {
	io.Writer
	// ReadLine blocks until the player submits one line, returned
	// without its line terminator.
	ReadLine() (string, error)
	// Clear wipes the screen before the next drawing.
	Clear() error
}

// Run plays turns until the game is won or lost, then draws the final
// board and reveals the word.  A failed read ends the game early with
// an *errors.InputError.
func (s *Session) Run(t Terminal) error {
	for !s.Done() {
		if err := s.Tick(t); err != nil {
			return err
		}
	}
	if err := s.Draw(t); err != nil {
		return err
	}
	_, err := fmt.Fprintf(t, "Word: %s\n", s.Word())
	return err
}

// Tick plays one turn: draw the board, ask for a letter and apply it.
// It does nothing once the game is over.
// An over-long guess is reported and acknowledged without costing a
// life.
func (s *Session) Tick(t Terminal) error {
	if s.Done() {
		return nil
	}
	if err := s.Draw(t); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(t, PromptLetter); err != nil {
		return err
	}

	line, err := t.ReadLine()
	if err != nil {
		return hmerr.Input("guess", err)
	}

	if s.Guess(line) != Rejected {
		return nil
	}

	if _, err := fmt.Fprintf(t, "\n%s\n%s\n", MsgTooMany, PromptContinue); err != nil {
		return err
	}
	if _, err := t.ReadLine(); err != nil {
		return hmerr.Input("acknowledge", err)
	}
	return nil
}

// Draw clears the screen and writes the current board.
func (s *Session) Draw(t Terminal) error {
	if err := t.Clear(); err != nil {
		return err
	}
	_, err := io.WriteString(t, s.Render())
	return err
}

// Render returns the gallows for the lives left followed by the
// revealed letters separated by single spaces.
func (s *Session) Render() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(Gallows(s.lives))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(s.revealed, " "))
	b.WriteString("\n\n")
	return b.String()
}
