package upload

import (
	"fmt"
	"io/fs"
)

// TargetNotFoundError reports a target path that does not exist.
type TargetNotFoundError struct {
	Path string
}

func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("target does not exist: %q", e.Path)
}

// Is lets callers match with errors.Is(err, fs.ErrNotExist).
func (e *TargetNotFoundError) Is(target error) bool {
	return target == fs.ErrNotExist
}
