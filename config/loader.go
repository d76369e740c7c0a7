package config

// loader.go - configuration loading from .env files and environment
// variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. .env file  (this file; never overrides a real variable)
//   4. Defaults   (defaults.go)

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ── .env ─────────────────────────────────────────────────────────────

// LoadDotEnv copies variables from the file at path into the process
// environment, leaving variables that are already set alone.  A missing
// file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the HANGMAN_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if envBool("HANGMAN_LISTEN") {
		cfg.Listen = true
	}
	if v := os.Getenv("HANGMAN_BIND"); v != "" {
		cfg.Bind = v
	}
	if v := envInt("HANGMAN_PORT"); v > 0 {
		cfg.LocalPort = v
	}
	if envBool("HANGMAN_KEEP_OPEN") {
		cfg.KeepOpen = true
	}
	if v := envInt("HANGMAN_TIMEOUT"); v > 0 {
		cfg.Timeout = secondsDuration(v)
	}
	if v := envInt("HANGMAN_MAX_SESSIONS"); v > 0 {
		cfg.MaxSessions = v
	}

	// SSH
	if envBool("HANGMAN_SSH") {
		cfg.SSH = true
	}
	if v := os.Getenv("HANGMAN_HOST_KEY"); v != "" {
		cfg.HostKeyPath = v
	}

	// Game
	if v := envUint("HANGMAN_SEED"); v > 0 {
		cfg.Seed = v
	}

	// Output
	if v := envInt("HANGMAN_VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envUint(key string) uint64 {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}

func secondsDuration(sec int) time.Duration {
	return time.Duration(sec) * time.Second
}
