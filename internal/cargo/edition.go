// Package cargo reads the Rust edition from Cargo manifests.
package cargo

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestFile is the Cargo manifest name.
const ManifestFile = "Cargo.toml"

// InvalidManifestError reports a Cargo.toml that could not be decoded.
type InvalidManifestError struct {
	Path    string
	Wrapped error
}

func (e *InvalidManifestError) Error() string {
	return fmt.Sprintf("%s: failed to parse TOML: %v", e.Path, e.Wrapped)
}

func (e *InvalidManifestError) Unwrap() error {
	return e.Wrapped
}

type manifest struct {
	Package *struct {
		// Either a string or {workspace = true}.
		Edition any `toml:"edition"`
	} `toml:"package"`
	Workspace *struct {
		Package *struct {
			Edition string `toml:"edition"`
		} `toml:"package"`
	} `toml:"workspace"`
}

func (m *manifest) workspaceEdition() string {
	if m.Workspace == nil || m.Workspace.Package == nil {
		return ""
	}
	return m.Workspace.Package.Edition
}

// DetectEdition walks up from dir to the nearest Cargo.toml and returns the
// edition of its [package]. An edition inherited with `edition.workspace = true`
// is read from the enclosing workspace manifest. "" means no edition was found.
func DetectEdition(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	inherit := false
	for {
		path := filepath.Join(dir, ManifestFile)
		m, found, err := readManifest(path)
		if err != nil {
			return "", err
		}

		if found {
			if inherit {
				if e := m.workspaceEdition(); e != "" {
					return e, nil
				}
			} else {
				if m.Package == nil {
					// virtual workspace manifest: the file belongs to no package
					return "", nil
				}
				switch e := m.Package.Edition.(type) {
				case string:
					return e, nil
				case map[string]any:
					if ws, _ := e["workspace"].(bool); !ws {
						return "", nil
					}
					inherit = true
					// The package may itself be the workspace root.
					if we := m.workspaceEdition(); we != "" {
						return we, nil
					}
				default:
					return "", nil
				}
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func readManifest(path string) (*manifest, bool, error) {
	var m manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, false, err
		}
		return nil, false, &InvalidManifestError{Path: path, Wrapped: err}
	}
	return &m, true, nil
}
