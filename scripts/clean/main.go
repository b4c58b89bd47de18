// Package main removes build, test and log artefacts from the working tree.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

func main() {
	for _, dir := range []string{"bin", "dist"} {
		report(dir, os.RemoveAll(dir))
	}
	for _, pattern := range []string{"rcu.log", "*.log.json", "coverage*", "*.out", "*.test", "*.coverprofile"} {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			fmt.Printf("❌ Bad pattern %s: %v\n", pattern, err)
			continue
		}
		for _, match := range matches {
			report(match, os.Remove(match))
		}
	}
}

func report(path string, err error) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		fmt.Printf("❌ Failed to remove %s: %v\n", path, err)
	default:
		fmt.Printf("✅ Removed %s\n", path)
	}
}
