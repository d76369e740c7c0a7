// Package cmd wires up the CLI flags and dispatches to a game mode.
package cmd

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"hangman/config"
	"hangman/internal/core"
	"hangman/internal/metrics"
	"hangman/internal/words"
	"hangman/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X hangman/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs the selected mode on the process's
// stdin/stdout.
func Execute(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdin, os.Stdout)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	if err := config.LoadDotEnv(config.DefaultDotEnv); err != nil {
		return fmt.Errorf("%s: %w", config.DefaultDotEnv, err)
	}

	cfg := &config.Config{}
	config.LoadFromEnv(cfg)

	fs := flag.NewFlagSet("hangman", flag.ContinueOnError)

	// ── serving ──────────────────────────────────────────────────
	fs.BoolVarP(&cfg.Listen, "listen", "l", cfg.Listen, "Serve games to remote players")
	fs.IntVarP(&cfg.LocalPort, "port", "p", cfg.LocalPort, fmt.Sprintf("Listen port (default %d)", config.DefaultPort))
	fs.StringVarP(&cfg.Bind, "bind", "b", cfg.Bind, "Listen address (default all interfaces)")
	fs.BoolVarP(&cfg.KeepOpen, "keep-open", "k", cfg.KeepOpen, "Serve many players (with -l)")
	fs.IntVar(&cfg.MaxSessions, "max-sessions", cfg.MaxSessions, fmt.Sprintf("Concurrent games with -k (default %d)", config.DefaultMaxSessions))

	timeoutSec := int(cfg.Timeout / time.Second)
	fs.IntVarP(&timeoutSec, "timeout", "w", timeoutSec, "Per-player time limit in seconds")

	// ── SSH ──────────────────────────────────────────────────────
	fs.BoolVar(&cfg.SSH, "ssh", cfg.SSH, "Serve over SSH instead of plain TCP")
	fs.StringVar(&cfg.HostKeyPath, "host-key", cfg.HostKeyPath, "SSH host private key (ephemeral if unset)")

	// ── game ─────────────────────────────────────────────────────
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Word picker seed (0 = random)")

	// ── output ───────────────────────────────────────────────────
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase log verbosity on stderr (repeatable)")
	fs.BoolVar(&cfg.Stats, "stats", false, "Print session statistics when the server stops")

	var showVersion, showHelp, dryRun bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")
	fs.BoolVar(&dryRun, "dry-run", false, "Validate the configuration and exit")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "hangman %s\n", version)
		return nil
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q (use --help for usage)", fs.Arg(0))
	}

	cfg.Timeout = time.Duration(timeoutSec) * time.Second

	// ── validate ─────────────────────────────────────────────────
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	list, err := words.Default()
	if err != nil {
		return fmt.Errorf("word list: %w", err)
	}

	if dryRun {
		return nil
	}

	// ── build components ─────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbose)
	logger.Debug("%d words loaded", list.Len())

	var stats *metrics.Collector
	if cfg.Listen {
		stats = metrics.New()
	}

	mode, err := core.Build(cfg, words.NewSource(list, cfg.Seed), stats, logger)
	if err != nil {
		return err
	}
	configureIO(mode, stdin, stdout, logger)

	err = mode.Run(ctx)

	if cfg.Stats {
		fmt.Fprintln(os.Stderr, stats.JSON())
	}
	return err
}

// ── helpers ──────────────────────────────────────────────────────────

// configureIO points local play at the given streams and announces
// where serving modes listen.
func configureIO(mode core.Mode, stdin io.Reader, stdout io.Writer, logger *util.Logger) {
	announce := func(a net.Addr) { logger.Info("serving hangman on %s", a) }

	switch m := mode.(type) {
	case *core.LocalMode:
		m.Stdin = stdin
		m.Stdout = stdout
	case *core.ListenMode:
		m.OnListen = announce
	case *core.SSHMode:
		m.OnListen = announce
	}
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `hangman - terminal word-guessing game v%s

Guess the secret word one letter at a time before the gallows are
complete.  Six wrong guesses and the game is lost.

Usage:
  hangman [options]                           Play in this terminal
  hangman -l [-p port] [-k] [options]         Serve games over TCP
  hangman -l --ssh [-p port] [options]        Serve games over SSH

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  hangman                                     Play a game
  hangman -lk -p 2323 -v                      Host games for nc/telnet
  nc localhost 2323                           Join a hosted game
  hangman -lk --ssh -p 2222 --host-key key    Host games over SSH
  ssh -p 2222 localhost                       Join an SSH game
`)
}
