// Package main provides the CLI entrypoint for shomoy.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/banglasoft/shomoy/internal/audio"
	"github.com/banglasoft/shomoy/internal/clip"
	"github.com/banglasoft/shomoy/internal/config"
	"github.com/banglasoft/shomoy/internal/history"
	"github.com/banglasoft/shomoy/internal/scheduler"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		test       bool
		interval   int
		clipsDir   string
		configPath string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "shomoy",
	Short: "Bangla spoken-time announcer",
	Long: `shomoy announces the current time in Bangla by playing pre-recorded
audio clips at clock-aligned intervals.

Each announcement strings together an intro phrase, the period of day,
the hour, and the minute mark: "ekhon somoy sokal shatta poner minute".

Running shomoy without a subcommand starts the announcement loop.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logging
		setupLogger()

		// Load configuration
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Flags override the config file
		if cmd.Flags().Changed("interval") {
			cfg.Announce.Interval = globalOpts.interval
		}
		if globalOpts.clipsDir != "" {
			cfg.Audio.Dir = globalOpts.clipsDir
		}

		return cfg.Validate()
	},
	RunE: runAnnouncer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVar(&globalOpts.interval, "interval", config.DefaultInterval,
		"Announcement interval in minutes (15, 30, or 60)")
	rootCmd.Flags().BoolVar(&globalOpts.test, "test", false,
		"Announce once and exit")

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.clipsDir, "clips-dir", "",
		"Path to audio clips directory (default: ~/.local/share/shomoy/clips)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/shomoy/config.toml)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// runAnnouncer runs the preflight check and the announcement loop.
func runAnnouncer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lib, err := audio.NewLibrary(cfg.Audio.Dir, logger)
	if err != nil {
		return err
	}

	// Preflight: every required clip must exist before the loop starts.
	if missing := lib.Missing(); len(missing) > 0 {
		printMissing(lib.Dir(), missing)
		return nil
	}

	backend, err := audio.Detect(&cfg.Audio, logger)
	if err != nil {
		if errors.Is(err, audio.ErrNoBackend) {
			fmt.Fprintln(os.Stderr, "Error: no audio backend is available, cannot play audio.")
			fmt.Fprintln(os.Stderr, "Install alsa-utils (aplay), pulseaudio-utils (paplay) or ffmpeg (ffplay),")
			fmt.Fprintln(os.Stderr, "or fix the audio device so the built-in speaker can open it.")
			return nil
		}
		return err
	}
	defer func() { _ = backend.Close() }()

	// Re-recorded clips take effect without a restart when using the
	// built-in speaker.
	if sp, ok := backend.(*audio.Speaker); ok {
		watcher, err := audio.NewWatcher(sp, lib.Dir(), logger)
		if err != nil {
			logger.Warn("failed to create clip watcher", "error", err)
		} else if err := watcher.Start(); err != nil {
			logger.Warn("failed to start clip watcher", "error", err)
		} else {
			defer func() { _ = watcher.Stop() }()
		}
	}

	sequencer := audio.NewSequencer(lib, backend, logger)

	var histLog *history.Log
	if cfg.History.Enabled {
		histLog, err = history.Open(cfg.History.File)
		if err != nil {
			logger.Warn("failed to open history log", "error", err)
		} else {
			defer func() { _ = histLog.Close() }()
		}
	}

	announce := func(ctx context.Context, now time.Time) {
		logger.Info("announcing time", "time", now.Format("15:04"))

		result := sequencer.PlaySequence(ctx, clip.Resolve(now))

		if histLog != nil {
			entry, err := history.NewEntry(now, result.Played, result.Skipped)
			if err == nil {
				err = histLog.Append(entry)
			}
			if err != nil {
				logger.Warn("failed to record announcement", "error", err)
			}
		}
	}

	if globalOpts.test {
		announce(ctx, time.Now())
		return nil
	}

	sched, err := scheduler.New(cfg.Announce.Interval, announce, logger)
	if err != nil {
		return err
	}

	fmt.Printf("shomoy started (announcing every %d minutes)\n", cfg.Announce.Interval)
	fmt.Printf("Audio clips directory: %s\n", lib.Dir())
	fmt.Println("Press Ctrl+C to stop")

	return sched.Run(ctx)
}

// printMissing reports absent clips, capped at ten entries.
func printMissing(dir string, missing []string) {
	fmt.Printf("Missing %d audio files in %s:\n", len(missing), dir)
	for i, name := range missing {
		if i == 10 {
			fmt.Printf("  ... and %d more.\n", len(missing)-10)
			break
		}
		fmt.Printf("  - %s\n", name)
	}
	fmt.Println("\nPlease add these files to continue.")
}
