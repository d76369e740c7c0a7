package errors

import (
	"fmt"
	"io"
	"net"
	"testing"
)

func TestInputError_Format(t *testing.T) {
	err := Input("guess", io.ErrUnexpectedEOF)
	want := "error reading input (guess): unexpected EOF"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !Is(err, io.ErrUnexpectedEOF) {
		t.Error("should unwrap to io.ErrUnexpectedEOF")
	}
}

func TestIsInput(t *testing.T) {
	wrapped := fmt.Errorf("game: %w", Input("acknowledge", ErrInputClosed))
	if !IsInput(wrapped) {
		t.Error("wrapped InputError should be detected")
	}
	if !Is(wrapped, ErrInputClosed) {
		t.Error("should unwrap to ErrInputClosed")
	}
	if IsInput(fmt.Errorf("boom")) {
		t.Error("plain error is not an input error")
	}
}

func TestNetworkError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  NetworkError
		want string
	}{
		{
			name: "retryable",
			err:  NetworkError{Op: "accept", Addr: ":2323", Err: io.EOF, Retryable: true},
			want: "accept :2323: EOF (retryable)",
		},
		{
			name: "non-retryable",
			err:  NetworkError{Op: "listen", Addr: ":8080", Err: fmt.Errorf("bind failed")},
			want: "listen :8080: bind failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSSHError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  *SSHError
		want string
	}{
		{"with remote", WrapSSH("handshake", "10.0.0.7:51022", fmt.Errorf("EOF")), "ssh handshake 10.0.0.7:51022: EOF"},
		{"no remote", WrapSSH("hostkey", "", fmt.Errorf("no PEM data")), "ssh hostkey: no PEM data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  ConfigError
		want string
	}{
		{
			name: "with value and hint",
			err: ConfigError{
				Field:   "port",
				Value:   99999,
				Message: "out of range 1-65535",
				Hint:    "use a port between 1 and 65535",
			},
			want: "config: --port=99999: out of range 1-65535\n  hint: use a port between 1 and 65535",
		},
		{
			name: "missing value no hint",
			err: ConfigError{
				Field:   "port",
				Message: "required with --listen",
			},
			want: "config: --port: required with --listen",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"retryable network", &NetworkError{Op: "accept", Addr: "x", Err: io.EOF, Retryable: true}, true},
		{"non-retryable network", &NetworkError{Op: "accept", Addr: "x", Err: io.EOF}, false},
		{"plain error", fmt.Errorf("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsRetryable_NetOpError(t *testing.T) {
	opErr := &net.OpError{
		Op:  "accept",
		Net: "tcp",
		Err: &net.DNSError{IsTemporary: true},
	}
	if !IsRetryable(opErr) {
		t.Error("temporary OpError should be retryable")
	}
	if !Wrap("accept", "127.0.0.1:1", opErr).Retryable {
		t.Error("Wrap should classify a temporary OpError as retryable")
	}
	if IsRetryable(&net.OpError{Op: "accept", Net: "tcp", Err: net.ErrClosed}) {
		t.Error("closed listener is not retryable")
	}
}

func TestSentinels(t *testing.T) {
	sentinels := []error{ErrEmptyWordList, ErrInputClosed, ErrServerBusy, ErrTimeout}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && Is(a, b) {
				t.Errorf("sentinel %d and %d should not match", i, j)
			}
		}
	}
}
