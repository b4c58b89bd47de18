package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/andyballingall/rust-code-uploader/internal/cargo"
	"github.com/andyballingall/rust-code-uploader/internal/config"
	"github.com/andyballingall/rust-code-uploader/internal/report"
	"github.com/andyballingall/rust-code-uploader/internal/rustfmt"
	"github.com/andyballingall/rust-code-uploader/internal/upload"
)

// Manager defines the upload-and-format operation behind the CLI.
type Manager interface {
	Upload(ctx context.Context, opts config.Options, format string, useColour bool) error
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation, allowing
// for deferred initialization of dependencies.
type LazyManager struct {
	inner Manager
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner returns true if the inner manager has been set.
// This lets tests inject a manager before the command runs.
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) Upload(ctx context.Context, opts config.Options, format string, useColour bool) error {
	return l.check().Upload(ctx, opts, format, useColour)
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager writes the code, formats it and reports the result.
type CLIManager struct {
	logger         *slog.Logger
	settings       *config.Settings
	formatter      *rustfmt.Formatter
	reporterWriter io.Writer
}

func NewCLIManager(
	l *slog.Logger,
	s *config.Settings,
	f *rustfmt.Formatter,
	w io.Writer,
) *CLIManager {
	return &CLIManager{
		logger:         l,
		settings:       s,
		formatter:      f,
		reporterWriter: w,
	}
}

// Upload runs the linear pipeline: resolve target, write, resolve formatter, run it,
// report. Every step's failure ends the run; a written but unformatted file is left in place.
func (m *CLIManager) Upload(ctx context.Context, opts config.Options, format string, useColour bool) error {
	opts = opts.WithDefaults(m.settings)

	// color.NoColor is set when stdout is not a terminal or NO_COLOR is set.
	reporter, err := report.New(format, useColour && !color.NoColor)
	if err != nil {
		return err
	}

	m.logger.Debug("writing code", "target", opts.Target, "bytes", len(opts.Code))
	written, err := upload.Upload(opts.Target, opts.Code)
	if err != nil {
		return err
	}
	m.logger.Debug("code written", "path", written)

	edition := opts.RustVersion
	if edition == "" && m.settings.Defaults.DetectEdition {
		edition, err = cargo.DetectEdition(filepath.Dir(written))
		if err != nil {
			return err
		}
		m.logger.Debug("detected edition", "edition", edition)
	}

	inv, err := m.formatter.Format(ctx, written, opts.RustfmtConfig, edition)
	if inv.Executable != "" {
		m.logger.Debug("invoked formatter", "executable", inv.Executable, "args", inv.Args)
	}
	if err != nil {
		return err
	}

	return reporter.Write(m.reporterWriter, &report.Result{
		Target:    opts.Target,
		Written:   written,
		Bytes:     len(opts.Code),
		Formatter: inv.Executable,
		Args:      inv.Args,
	})
}
