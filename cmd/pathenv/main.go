// Command pathenv composes PATH-like environment variables through an
// argot command tree. It doubles as the library's reference application:
// every surface (flags, sub-commands, system directives, tool derivation)
// is reachable from it.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/argot/log"
)

func main() {
	ctx := context.Background()

	stop := startProfiling(ctx)
	defer stop()

	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		log.Error("run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
