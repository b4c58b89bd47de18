// Package fsh holds the small filesystem and environment helpers shared by rcu.
package fsh

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNotExecutable is returned by LookPath when no executable candidate is found.
var ErrNotExecutable = errors.New("executable file not found in search path")

// PathResolver provides path resolution operations.
type PathResolver interface {
	// Abs returns the absolute path.
	Abs(path string) (string, error)
	// LookPath searches the directories of searchPath (a PATH-style list) for an
	// executable called name.
	LookPath(name, searchPath string) (string, error)
}

// StandardPathResolver is the default implementation using standard library functions.
type StandardPathResolver struct{}

// NewPathResolver creates a new StandardPathResolver.
func NewPathResolver() *StandardPathResolver {
	return &StandardPathResolver{}
}

// Abs returns the absolute path.
func (r *StandardPathResolver) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// LookPath searches searchPath rather than the process PATH so callers can supply
// an environment view of their own. Names containing a separator are checked directly.
func (r *StandardPathResolver) LookPath(name, searchPath string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) {
		if isExecutable(name) {
			return name, nil
		}
		return "", &fs.PathError{Op: "lookpath", Path: name, Err: ErrNotExecutable}
	}

	for _, dir := range filepath.SplitList(searchPath) {
		if dir == "" {
			// An empty element means the current directory, which we never search.
			continue
		}
		for _, candidate := range candidates(filepath.Join(dir, name)) {
			if isExecutable(candidate) {
				return candidate, nil
			}
		}
	}
	return "", &fs.PathError{Op: "lookpath", Path: name, Err: ErrNotExecutable}
}

func candidates(path string) []string {
	if runtime.GOOS != "windows" {
		return []string{path}
	}
	return []string{path, path + ".exe", path + ".cmd", path + ".bat"}
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
