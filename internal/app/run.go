package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/andyballingall/rust-code-uploader/internal/fsh"
)

// Run executes the rcu command line in args (including the program name).
// Errors are printed to stderr and returned; the caller decides the exit status.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, envProvider fsh.EnvProvider) error {
	return run(ctx, args, stdout, stderr, envProvider, &LazyManager{})
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, envProvider fsh.EnvProvider,
	lazy *LazyManager,
) error {
	logLevel := &slog.LevelVar{}
	logLevel.Set(slog.LevelInfo)

	if envProvider == nil {
		envProvider = fsh.NewEnvProvider()
	}

	rootCmd := NewRootCmd(lazy, logLevel, stdout, stderr, envProvider)
	rootCmd.SetArgs(args[1:]) // Skip the program name

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print error to stderr for script tests and CLI users (SilenceErrors is set)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
