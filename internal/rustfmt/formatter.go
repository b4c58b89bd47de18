package rustfmt

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// Invocation records how the formatter was run.
type Invocation struct {
	Executable string
	Args       []string
}

// Formatter resolves the formatter executable and runs it over a single file.
type Formatter struct {
	Name     string
	Resolver Resolver
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

// NewFormatter returns a Formatter whose child process shares the given streams.
func NewFormatter(name string, r Resolver, stdin io.Reader, stdout, stderr io.Writer) *Formatter {
	return &Formatter{
		Name:     name,
		Resolver: r,
		Stdin:    stdin,
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

// Format resolves the executable and runs it with BuildArgs(path, configPath, edition).
// The returned Invocation is populated as far as resolution got, even on error.
func (f *Formatter) Format(ctx context.Context, path, configPath, edition string) (Invocation, error) {
	exe, err := f.Resolver.Resolve(ctx, f.Name)
	if err != nil {
		return Invocation{}, err
	}

	inv := Invocation{
		Executable: exe,
		Args:       BuildArgs(path, configPath, edition),
	}
	return inv, f.Run(ctx, inv)
}

// Run starts the invocation and waits for it. Start failures are returned as-is;
// an unsuccessful exit becomes a *FormatterFailedError.
func (f *Formatter) Run(ctx context.Context, inv Invocation) error {
	//nolint:gosec // the executable is resolved from trusted configuration
	cmd := exec.CommandContext(ctx, inv.Executable, inv.Args...)
	cmd.Stdin = f.Stdin
	cmd.Stdout = f.Stdout
	cmd.Stderr = f.Stderr

	if err := cmd.Start(); err != nil {
		return err
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &FormatterFailedError{Executable: inv.Executable, State: exitErr.ProcessState}
		}
		return err
	}
	return nil
}
