// Package upload materialises code on disk at a target path.
package upload

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/andyballingall/rust-code-uploader/internal/config"
)

// stat is a variable to allow failures other than "not found" to be simulated in tests.
var stat = os.Stat

// ResolveTarget returns the path code should be written to. Directories receive
// config.DefaultFileName; anything else is written to directly. A target that
// does not exist is a *TargetNotFoundError and nothing is created.
func ResolveTarget(target string) (string, error) {
	info, err := stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &TargetNotFoundError{Path: target}
		}
		return "", err
	}
	if info.IsDir() {
		return filepath.Join(target, config.DefaultFileName), nil
	}
	return target, nil
}

// WriteCode creates or truncates path and writes code to it byte for byte.
func WriteCode(path, code string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = f.WriteString(code); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Upload resolves target and writes code to it, returning the path written.
func Upload(target, code string) (string, error) {
	path, err := ResolveTarget(target)
	if err != nil {
		return "", err
	}
	if err = WriteCode(path, code); err != nil {
		return "", err
	}
	return path, nil
}
