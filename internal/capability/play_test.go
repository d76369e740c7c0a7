package capability

import (
	"bytes"
	"context"
	"strings"
	"testing"

	hmerr "hangman/internal/errors"
	"hangman/internal/metrics"
	"hangman/internal/session"
	"hangman/util"
)

type fixedWord string

func (w fixedWord) RandomWord() string { return string(w) }

func newSession(input string, out *bytes.Buffer) *session.Session {
	return session.New("test", strings.NewReader(input), out, util.NewLogger(0))
}

func TestPlay_Won(t *testing.T) {
	var out bytes.Buffer
	m := metrics.New()
	p := &Play{Words: fixedWord("cat"), Metrics: m}

	err := p.Handle(context.Background(), newSession("z\nc\nxx\n\na\nt\n", &out))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.HasSuffix(out.String(), "Word: cat\n") {
		t.Errorf("output should end with the word:\n%s", out.String())
	}

	snap := m.Snapshot()
	if snap.GamesWon != 1 || snap.GamesLost != 0 {
		t.Errorf("won=%d lost=%d, want 1 and 0", snap.GamesWon, snap.GamesLost)
	}
	if snap.GuessesAccepted != 4 || snap.GuessesRejected != 1 {
		t.Errorf("guesses = %d/%d, want 4/1", snap.GuessesAccepted, snap.GuessesRejected)
	}
}

func TestPlay_Lost(t *testing.T) {
	var out bytes.Buffer
	m := metrics.New()
	p := &Play{Words: fixedWord("dog"), Metrics: m}

	if err := p.Handle(context.Background(), newSession("x\ny\nz\nq\nw\ne\n", &out)); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.HasSuffix(out.String(), "Word: dog\n") {
		t.Errorf("output should reveal the word:\n%s", out.String())
	}
	if m.Snapshot().GamesLost != 1 {
		t.Errorf("lost = %d, want 1", m.Snapshot().GamesLost)
	}
}

func TestPlay_InputClosed(t *testing.T) {
	var out bytes.Buffer
	m := metrics.New()
	p := &Play{Words: fixedWord("dog"), Metrics: m}

	err := p.Handle(context.Background(), newSession("d\n", &out))
	if !hmerr.Is(err, hmerr.ErrInputClosed) || !hmerr.IsInput(err) {
		t.Fatalf("err = %v, want input closed", err)
	}
	if m.Snapshot().GamesAbandoned != 1 {
		t.Errorf("abandoned = %d, want 1", m.Snapshot().GamesAbandoned)
	}
}

func TestPlay_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	p := &Play{Words: fixedWord("dog")}
	if err := p.Handle(ctx, newSession("d\n", &out)); err == nil {
		t.Fatal("expected context error")
	}
	if out.Len() != 0 {
		t.Error("a cancelled session should not draw anything")
	}
}
