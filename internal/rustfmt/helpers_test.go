package rustfmt

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// Tests in this package exec freshly written scripts, so they do not run in
// parallel: a concurrent fork can hold the script open and fail exec with ETXTBSY.

func requireUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}
}

// fakeTool writes an executable shell script called name into dir.
func fakeTool(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

// recordingRustfmt writes a fake rustfmt that stores its arguments, one per line,
// in the returned record file and exits with code.
func recordingRustfmt(t *testing.T, dir, code string) (exe, record string) {
	t.Helper()
	record = filepath.Join(dir, "args.txt")
	exe = fakeTool(t, dir, "rustfmt", `printf '%s\n' "$@" > '`+record+`'
echo "rustfmt diagnostics" >&2
exit `+code)
	return exe, record
}
