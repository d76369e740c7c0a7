package util

import (
	"net"
	"testing"
)

func TestFindFreePort(t *testing.T) {
	port, err := FindFreePort()
	if err != nil {
		t.Fatal(err)
	}
	if port < 1 || port > 65535 {
		t.Errorf("port %d out of range", port)
	}
}

func TestRemoteAddr(t *testing.T) {
	if got := RemoteAddr(nil); got != "-" {
		t.Errorf("RemoteAddr(nil) = %q, want -", got)
	}

	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()
	if got := RemoteAddr(a); got != "pipe" {
		t.Errorf("RemoteAddr(pipe) = %q, want pipe", got)
	}
}
