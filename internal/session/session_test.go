package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"

	"hangman/util"
)

func TestNew(t *testing.T) {
	var logs bytes.Buffer
	logger := util.NewLogger(1)
	logger.SetOutput(&logs)

	a := New("10.0.0.1:5000", strings.NewReader(""), &bytes.Buffer{}, logger)
	b := New("10.0.0.2:5000", strings.NewReader(""), &bytes.Buffer{}, logger)

	if _, err := uuid.Parse(a.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", a.ID, err)
	}
	if a.ID == b.ID {
		t.Error("sessions should get distinct ids")
	}
	if a.Remote != "10.0.0.1:5000" {
		t.Errorf("Remote = %q", a.Remote)
	}

	a.Logger.Info("hello")
	want := "[INF] [" + ShortID(a.ID) + "] hello\n"
	if logs.String() != want {
		t.Errorf("log = %q, want %q", logs.String(), want)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("3f2a9c1e-0000-4000-8000-000000000000"); got != "3f2a9c1e" {
		t.Errorf("ShortID = %q", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID(short) = %q", got)
	}
}
