// Package rustfmt locates and runs the rustfmt executable.
package rustfmt

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/andyballingall/rust-code-uploader/internal/config"
	"github.com/andyballingall/rust-code-uploader/internal/fsh"
)

// OverrideEnvVar names an executable that bypasses every other lookup.
const OverrideEnvVar = "RCU_RUSTFMT"

// Resolver finds the executable for a formatter's logical name.
// Resolvers that simply cannot find it return a *FormatterNotFoundError so a
// Chain can move on to the next strategy.
type Resolver interface {
	Resolve(ctx context.Context, name string) (string, error)
}

// Chain tries each Resolver in order. The first success wins; a not-found error
// moves on to the next one and any other error stops the chain.
type Chain []Resolver

func (c Chain) Resolve(ctx context.Context, name string) (string, error) {
	lastErr := error(&FormatterNotFoundError{Name: name})
	for _, r := range c {
		path, err := r.Resolve(ctx, name)
		if err == nil {
			return path, nil
		}
		var nf *FormatterNotFoundError
		if !errors.As(err, &nf) {
			return "", err
		}
		lastErr = err
	}
	return "", lastErr
}

// OverrideResolver returns an explicitly configured executable: the RCU_RUSTFMT
// environment variable first, then Path.
type OverrideResolver struct {
	Env  fsh.EnvProvider
	Path string
}

func (r *OverrideResolver) Resolve(_ context.Context, name string) (string, error) {
	if p := r.Env.Get(OverrideEnvVar); p != "" {
		return p, nil
	}
	if r.Path != "" {
		return r.Path, nil
	}
	return "", &FormatterNotFoundError{Name: name}
}

// VersionManagerResolver asks a version manager, `<Command> which <name>`, where
// the formatter is installed. The version manager itself is looked up on the PATH
// of the injected environment; its stderr is discarded.
type VersionManagerResolver struct {
	Command string
	Env     fsh.EnvProvider
	Paths   fsh.PathResolver
}

func (r *VersionManagerResolver) Resolve(ctx context.Context, name string) (string, error) {
	exe, err := r.Paths.LookPath(r.Command, r.Env.Get("PATH"))
	if err != nil {
		return "", &FormatterNotFoundError{Name: name, Wrapped: err}
	}

	//nolint:gosec // the command comes from settings, not from code being formatted
	cmd := exec.CommandContext(ctx, exe, "which", name)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", &FormatterNotFoundError{Name: name, Wrapped: err}
		}
		// A failed lookup still reports whatever it printed; an empty answer is handled below.
	}

	if !utf8.Valid(out) {
		return "", &InvalidFormatterPathError{Name: name, Raw: out}
	}
	path := strings.TrimSpace(string(out))
	if path == "" {
		return "", &FormatterNotFoundError{Name: name}
	}
	return path, nil
}

// SearchPathResolver looks name up directly on the injected environment's PATH.
type SearchPathResolver struct {
	Env   fsh.EnvProvider
	Paths fsh.PathResolver
}

func (r *SearchPathResolver) Resolve(_ context.Context, name string) (string, error) {
	path, err := r.Paths.LookPath(name, r.Env.Get("PATH"))
	if err != nil {
		return "", &FormatterNotFoundError{Name: name, Wrapped: err}
	}
	return path, nil
}

// NewResolver builds the lookup chain described by settings: override, then the
// version manager, then (if enabled) a direct PATH search.
func NewResolver(s config.FormatterSettings, env fsh.EnvProvider, paths fsh.PathResolver) Chain {
	chain := Chain{
		&OverrideResolver{Env: env, Path: s.Path},
		&VersionManagerResolver{Command: s.VersionManager, Env: env, Paths: paths},
	}
	if s.SearchPath {
		chain = append(chain, &SearchPathResolver{Env: env, Paths: paths})
	}
	return chain
}
