// Package game implements a single hangman game: the secret word, the
// lives left, the letters revealed so far, and the turn loop that reads
// guesses from a terminal until the game is won or lost.
package game

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	// MaxLives is the number of wrong guesses a player can survive,
	// and the number of lives every game starts with.
	MaxLives = 6

	// Blank marks a letter that has not been guessed yet.
	Blank = "_"
)

// WordSource supplies the secret word for a new game.
type WordSource interface {
	RandomWord() string
}

// State is where a game is in its lifecycle.
type State int

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Result is the effect a single guess had on the game.
type Result int

const (
	// Rejected guesses are longer than one letter (or arrive after the
	// game is over) and change nothing.
	Rejected Result = iota
	// Hit guesses revealed every position holding the letter.
	Hit
	// Miss guesses cost one life.
	Miss
)

func (r Result) String() string {
	switch r {
	case Rejected:
		return "rejected"
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	default:
		return "unknown"
	}
}

// letter is one position of the word still waiting to be guessed.
type letter struct {
	ch  rune
	pos int
}

// Session is the state of one game.  It is not safe for concurrent use;
// each game is owned by the goroutine running its turn loop.
type Session struct {
	lives     int
	word      []rune
	revealed  []string
	remaining []letter

	accepted int
	rejected int
}

// New starts a game on a word drawn from src.
func New(src WordSource) *Session {
	return NewWithWord(src.RandomWord())
}

// NewWithWord starts a game on the given word.
func NewWithWord(word string) *Session {
	runes := []rune(word)
	return &Session{
		lives: MaxLives,
		word:  runes,
		revealed: lo.Times(len(runes), func(int) string {
			return Blank
		}),
		remaining: lo.Map(runes, func(ch rune, i int) letter {
			return letter{ch: ch, pos: i}
		}),
	}
}

// Guess applies one line of player input to the game.
//
// The input is trimmed first.  More than one character is rejected
// without cost.  A character that occurs in the word is revealed at
// every position it occupies; anything else, the empty string
// included, costs a life.  Matching is case-sensitive.
func (s *Session) Guess(input string) Result {
	if s.Done() {
		return Rejected
	}

	guess := strings.TrimSpace(input)
	if utf8.RuneCountInString(guess) > 1 {
		s.rejected++
		return Rejected
	}
	s.accepted++

	if guess == "" {
		s.loseLife()
		return Miss
	}

	ch, _ := utf8.DecodeRuneInString(guess)
	if !lo.Contains(s.word, ch) {
		s.loseLife()
		return Miss
	}

	matches := func(l letter, _ int) bool { return l.ch == ch }
	for _, l := range lo.Filter(s.remaining, matches) {
		s.revealed[l.pos] = string(l.ch)
	}
	s.remaining = lo.Reject(s.remaining, matches)
	return Hit
}

func (s *Session) loseLife() {
	if s.lives > 0 {
		s.lives--
	}
}

// State reports whether the game is still running, won, or lost.
func (s *Session) State() State {
	switch {
	case s.lives == 0:
		return Lost
	case len(s.remaining) == 0:
		return Won
	default:
		return Playing
	}
}

// Done reports whether the game has ended.
func (s *Session) Done() bool { return s.State() != Playing }

// Lives returns the lives left.
func (s *Session) Lives() int { return s.lives }

// Word returns the secret word.
func (s *Session) Word() string { return string(s.word) }

// Revealed returns a copy of the display slots, one per letter.
func (s *Session) Revealed() []string {
	out := make([]string, len(s.revealed))
	copy(out, s.revealed)
	return out
}

// Remaining returns how many positions are still hidden.
func (s *Session) Remaining() int { return len(s.remaining) }

// Guesses returns the number of accepted and rejected guesses so far.
func (s *Session) Guesses() (accepted, rejected int) {
	return s.accepted, s.rejected
}
