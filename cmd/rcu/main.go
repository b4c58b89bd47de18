package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/andyballingall/rust-code-uploader/internal/app"
)

func main() {
	// Cancelling the context also kills a running rustfmt.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args, os.Stdout, os.Stderr, nil); err != nil {
		//nolint:gocritic // os.Exit is intentional
		os.Exit(1)
	}
}
