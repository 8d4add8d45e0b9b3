//go:build pprof

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/argot/log"
	"github.com/ardnew/argot/profile"
)

// startProfiling starts profiling when the PATHENV_PPROF environment
// variable names a supported mode. PATHENV_PPROF_DIR overrides the
// profile output directory.
func startProfiling(ctx context.Context) (stop func()) {
	mode := os.Getenv("PATHENV_PPROF")
	if mode == "" {
		return func() {}
	}

	dir := os.Getenv("PATHENV_PPROF_DIR")

	log.DebugContext(ctx, "pprof start",
		slog.String("mode", mode),
		slog.String("dir", dir),
	)

	var cfg profile.Config = func() (string, string, bool) {
		return "", "", false
	}

	cfg = profile.WithMode(mode)(cfg)
	cfg = profile.WithPath(dir)(cfg)
	cfg = profile.WithQuiet(true)(cfg)
	profiler := cfg.Start()

	return func() {
		log.DebugContext(ctx, "pprof stop", slog.String("mode", mode))
		profiler.Stop()
	}
}
