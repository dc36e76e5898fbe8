// Command slamd is the background daemon: it watches a windowing server's
// output topology and restores or synthesizes arrangements, per spec §1/§6.
// The real windowing-server backend is out of scope for this repo (spec §1
// treats it as an external collaborator behind the backend.Backend seam);
// -backend=fake runs the daemon against an in-memory stand-in instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tebeka/atexit"

	"github.com/fgindraud/slam/backend"
	"github.com/fgindraud/slam/daemon"
	"github.com/fgindraud/slam/geometry"
	"github.com/fgindraud/slam/layout"
)

func main() {
	databasePath := flag.String("database", "", "override the default database path (<user config dir>/slam/database.json)")
	logLevelName := flag.String("log-level", "warn", "one of error, warn, info, debug, trace")
	reactionDelaySeconds := flag.Int("reaction-delay", 0, "debounce window in seconds; 0 disables debouncing")
	backendName := flag.String("backend", "fake", `backend implementation to run against; only "fake" is implemented in this repo`)
	flag.Parse()

	level, err := daemon.ParseLogLevel(*logLevelName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	path := *databasePath
	if path == "" {
		path, err = daemon.DefaultDatabasePath()
		if err != nil {
			logger.Error("resolving default database path", "error", err)
			atexit.Exit(1)
		}
	}

	var reactionDelay *time.Duration
	if *reactionDelaySeconds > 0 {
		d := time.Duration(*reactionDelaySeconds) * time.Second
		reactionDelay = &d
	}

	if *backendName != "fake" {
		logger.Error("unsupported backend", "backend", *backendName)
		atexit.Exit(1)
	}
	b := newDemoFakeBackend(logger)

	atexit.Register(func() {
		logger.Info("slamd shutting down")
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := daemon.Config{DatabasePath: path, LogLevel: level, ReactionDelay: reactionDelay}
	if err := daemon.Run(ctx, cfg, b, logger); err != nil {
		logger.Error("daemon exited with error", "error", err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// newDemoFakeBackend seeds a two-output demo layout so -backend=fake has
// something to report; without a real windowing server there is no source
// of further topology-change events, so the daemon otherwise sits idle.
func newDemoFakeBackend(logger *slog.Logger) *backend.Fake {
	left := layout.OutputEntry{
		ID:    layout.NameId("DEMO-1"),
		State: layout.Enabled(layout.Mode{Size: geometry.V2[uint32](1920, 1080), Frequency: 60}, geometry.Identity, geometry.V2[int32](0, 0)),
	}
	right := layout.OutputEntry{
		ID:    layout.NameId("DEMO-2"),
		State: layout.Enabled(layout.Mode{Size: geometry.V2[uint32](1920, 1080), Frequency: 60}, geometry.Identity, geometry.V2[int32](1920, 0)),
	}
	initial := layout.From([]layout.OutputEntry{left, right}, nil)
	return backend.NewFake(initial, logger)
}
