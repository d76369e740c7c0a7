package core

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"hangman/internal/capability"
	hmerr "hangman/internal/errors"
	"hangman/util"
)

func TestLocalMode_Plays(t *testing.T) {
	var out bytes.Buffer
	mode := &LocalMode{
		Capability: &capability.Play{Words: fixedWord("cat")},
		Logger:     util.NewLogger(0),
		Stdin:      strings.NewReader("z\nc\na\nt\n"),
		Stdout:     &out,
	}

	if err := mode.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.HasSuffix(out.String(), "Word: cat\n") {
		t.Errorf("output should end with the word:\n%s", out.String())
	}
}

func TestLocalMode_InputFailure(t *testing.T) {
	mode := &LocalMode{
		Capability: &capability.Play{Words: fixedWord("cat")},
		Logger:     util.NewLogger(0),
		Stdin:      strings.NewReader("z\n"),
		Stdout:     &bytes.Buffer{},
	}

	err := mode.Run(context.Background())
	if !hmerr.IsInput(err) {
		t.Fatalf("err = %v, want an input error", err)
	}
}
