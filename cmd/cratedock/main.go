// Package main is the entry point for the cratedock CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cratedock/cratedock/cmd/cratedock/commands"
	"github.com/cratedock/cratedock/internal/app"
	_ "github.com/cratedock/cratedock/internal/wiring"
	"github.com/grindlemire/graft"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A signal-cancelled context lets ^C terminate a long vendoring run.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
