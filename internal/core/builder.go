package core

import (
	"time"

	"hangman/config"
	"hangman/internal/capability"
	"hangman/internal/game"
	"hangman/internal/metrics"
	"hangman/internal/retry"
	"hangman/util"
)

// Build constructs the appropriate Mode from the given configuration.
// cfg is expected to be validated and to have its defaults applied.
func Build(cfg *config.Config, words game.WordSource, m *metrics.Collector, logger *util.Logger) (Mode, error) {
	play := &capability.Play{Words: words, Metrics: m}

	switch {
	case cfg.Listen && cfg.SSH:
		return buildSSH(cfg, play, m, logger), nil
	case cfg.Listen:
		return buildListen(cfg, play, m, logger), nil
	default:
		return &LocalMode{Capability: play, Logger: logger}, nil
	}
}

// ── mode builders ────────────────────────────────────────────────────

func buildListen(cfg *config.Config, play *capability.Play, m *metrics.Collector, logger *util.Logger) *ListenMode {
	return &ListenMode{
		Address:     cfg.Address(),
		KeepOpen:    cfg.KeepOpen,
		Timeout:     cfg.Timeout,
		MaxSessions: cfg.MaxSessions,
		Capability:  play,
		Backoff:     acceptBackoff(m, logger),
		Metrics:     m,
		Logger:      logger,
	}
}

func buildSSH(cfg *config.Config, play *capability.Play, m *metrics.Collector, logger *util.Logger) *SSHMode {
	return &SSHMode{
		Address:          cfg.Address(),
		HostKeyPath:      cfg.HostKeyPath,
		HandshakeTimeout: config.DefaultHandshakeTimeout,
		KeepOpen:         cfg.KeepOpen,
		Timeout:          cfg.Timeout,
		MaxSessions:      cfg.MaxSessions,
		Play:             play,
		Backoff:          acceptBackoff(m, logger),
		Metrics:          m,
		Logger:           logger,
	}
}

// acceptBackoff retries temporary accept failures, logging and
// counting each one.
func acceptBackoff(m *metrics.Collector, logger *util.Logger) *retry.Backoff {
	b := retry.NewBackoff(config.DefaultAcceptBackoff, config.DefaultMaxAcceptBackoff, config.DefaultAcceptAttempts)
	b.OnRetry = func(attempt int, err error, wait time.Duration) {
		m.AcceptRetry()
		logger.Warn("%v; retrying in %v (attempt %d)", err, wait.Round(time.Millisecond), attempt)
	}
	return b
}
