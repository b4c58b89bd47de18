package rustfmt

import (
	"fmt"
	"io/fs"
	"os"
)

// FormatterNotFoundError reports that no strategy could locate the formatter.
type FormatterNotFoundError struct {
	Name    string
	Wrapped error
}

func (e *FormatterNotFoundError) Error() string {
	if e.Wrapped == nil {
		return fmt.Sprintf("could not find %s in PATH", e.Name)
	}
	return fmt.Sprintf("could not find %s in PATH: %v", e.Name, e.Wrapped)
}

func (e *FormatterNotFoundError) Unwrap() error {
	return e.Wrapped
}

// Is lets callers match with errors.Is(err, fs.ErrNotExist).
func (e *FormatterNotFoundError) Is(target error) bool {
	return target == fs.ErrNotExist
}

// InvalidFormatterPathError reports lookup output that is not valid UTF-8.
type InvalidFormatterPathError struct {
	Name string
	Raw  []byte
}

func (e *InvalidFormatterPathError) Error() string {
	return fmt.Sprintf("%s path contains invalid UTF-8: %q", e.Name, e.Raw)
}

// FormatterFailedError reports a formatter that exited unsuccessfully or was killed.
type FormatterFailedError struct {
	Executable string
	State      *os.ProcessState
}

func (e *FormatterFailedError) Error() string {
	return fmt.Sprintf("%s failed with status: %s", e.Executable, e.State)
}

// ExitCode returns the formatter's exit code, or -1 if it was terminated by a signal.
func (e *FormatterFailedError) ExitCode() int {
	return e.State.ExitCode()
}
