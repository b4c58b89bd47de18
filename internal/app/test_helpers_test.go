package app

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/rust-code-uploader/internal/config"
)

// Tests that exec fake tools are not parallel: a concurrent fork can hold a
// freshly written script open and make exec fail with ETXTBSY.

type MockManager struct {
	mock.Mock
}

func (m *MockManager) Upload(ctx context.Context, opts config.Options, format string, useColour bool) error {
	args := m.Called(ctx, opts, format, useColour)
	return args.Error(0)
}

// fakeToolchain is a bin directory holding a fake rustup whose `which rustfmt`
// points at a fake rustfmt. The fake rustfmt records its arguments in Record.
type fakeToolchain struct {
	Bin     string
	Rustfmt string
	Record  string
}

func newFakeToolchain(t *testing.T, rustfmtExit string) *fakeToolchain {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}
	bin := t.TempDir()
	tc := &fakeToolchain{
		Bin:     bin,
		Rustfmt: filepath.Join(bin, "rustfmt-stable"),
		Record:  filepath.Join(bin, "args.txt"),
	}
	writeScript(t, filepath.Join(bin, "rustup"), `[ "$1" = which ] || exit 2
echo "`+tc.Rustfmt+`"`)
	writeScript(t, tc.Rustfmt, `printf '%s\n' "$@" > '`+tc.Record+`'
exit `+rustfmtExit)
	return tc
}

func (tc *fakeToolchain) Args(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(tc.Record)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func writeScript(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
}
