package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromEnv_Serving(t *testing.T) {
	t.Setenv("HANGMAN_LISTEN", "yes")
	t.Setenv("HANGMAN_BIND", "127.0.0.1")
	t.Setenv("HANGMAN_PORT", "2424")
	t.Setenv("HANGMAN_KEEP_OPEN", "1")
	t.Setenv("HANGMAN_TIMEOUT", "30")
	t.Setenv("HANGMAN_MAX_SESSIONS", "8")

	cfg := &Config{}
	LoadFromEnv(cfg)

	if !cfg.Listen || !cfg.KeepOpen {
		t.Errorf("Listen=%v KeepOpen=%v, want both true", cfg.Listen, cfg.KeepOpen)
	}
	if cfg.Bind != "127.0.0.1" {
		t.Errorf("Bind = %q", cfg.Bind)
	}
	if cfg.LocalPort != 2424 {
		t.Errorf("LocalPort = %d, want 2424", cfg.LocalPort)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.MaxSessions != 8 {
		t.Errorf("MaxSessions = %d, want 8", cfg.MaxSessions)
	}
}

func TestLoadFromEnv_Booleans(t *testing.T) {
	for _, v := range []string{"1", "true", "yes", "TRUE", "Yes"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("HANGMAN_SSH", v)
			cfg := &Config{}
			LoadFromEnv(cfg)
			if !cfg.SSH {
				t.Error("SSH should be true")
			}
		})
	}
	for _, v := range []string{"0", "false", "no", "on"} {
		t.Run("not "+v, func(t *testing.T) {
			t.Setenv("HANGMAN_SSH", v)
			cfg := &Config{}
			LoadFromEnv(cfg)
			if cfg.SSH {
				t.Error("SSH should stay false")
			}
		})
	}
}

func TestLoadFromEnv_GameAndOutput(t *testing.T) {
	t.Setenv("HANGMAN_SEED", "18446744073709551615")
	t.Setenv("HANGMAN_VERBOSE", "2")
	t.Setenv("HANGMAN_HOST_KEY", "/etc/hangman/ssh_host_ed25519_key")

	cfg := &Config{}
	LoadFromEnv(cfg)

	if cfg.Seed != 18446744073709551615 {
		t.Errorf("Seed = %d", cfg.Seed)
	}
	if cfg.Verbose != 2 {
		t.Errorf("Verbose = %d, want 2", cfg.Verbose)
	}
	if cfg.HostKeyPath != "/etc/hangman/ssh_host_ed25519_key" {
		t.Errorf("HostKeyPath = %q", cfg.HostKeyPath)
	}
}

func TestLoadFromEnv_NoOverrideWhenEmpty(t *testing.T) {
	t.Setenv("HANGMAN_BIND", "")
	t.Setenv("HANGMAN_PORT", "")

	cfg := &Config{Bind: "10.0.0.1", LocalPort: 1234}
	LoadFromEnv(cfg)

	if cfg.Bind != "10.0.0.1" {
		t.Errorf("Bind was overridden: %q", cfg.Bind)
	}
	if cfg.LocalPort != 1234 {
		t.Errorf("LocalPort was overridden: %d", cfg.LocalPort)
	}
}

func TestLoadFromEnv_InvalidNumbersIgnored(t *testing.T) {
	t.Setenv("HANGMAN_PORT", "not-a-number")
	t.Setenv("HANGMAN_SEED", "-4")
	cfg := &Config{}
	LoadFromEnv(cfg)
	if cfg.LocalPort != 0 {
		t.Errorf("LocalPort should be 0 for invalid input, got %d", cfg.LocalPort)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed should be 0 for invalid input, got %d", cfg.Seed)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "HANGMAN_PORT=2525\nHANGMAN_BIND=127.0.0.2\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	// A real variable wins over the file.
	t.Setenv("HANGMAN_PORT", "2626")
	// Registers cleanup so the value loaded from the file is removed.
	t.Setenv("HANGMAN_BIND", "")
	os.Unsetenv("HANGMAN_BIND")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}

	cfg := &Config{}
	LoadFromEnv(cfg)
	if cfg.LocalPort != 2626 {
		t.Errorf("LocalPort = %d, want the environment's 2626", cfg.LocalPort)
	}
	if cfg.Bind != "127.0.0.2" {
		t.Errorf("Bind = %q, want the file's 127.0.0.2", cfg.Bind)
	}
}

func TestLoadDotEnv_Missing(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}
