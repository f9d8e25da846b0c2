// Package main is the entry point for the appinfo CLI.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"go.trai.ch/appinfo/cmd/appinfo/commands"
	"go.trai.ch/appinfo/internal/app"
	_ "go.trai.ch/appinfo/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// The progress recorder buffers status updates; flush them on exit.
	if c, ok := components.Tracer.(io.Closer); ok {
		defer c.Close() //nolint:errcheck // Best effort close in defer
	}

	// 2. Interface - CLI
	cli := commands.New(components.Accessor)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
