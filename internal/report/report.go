// Package report renders the outcome of an upload.
package report

import (
	"fmt"
	"io"
)

// SuccessMessage is printed when code was written and formatted.
const SuccessMessage = "Code successfully uploaded and formatted"

// Result describes a completed upload.
type Result struct {
	Target    string
	Written   string
	Bytes     int
	Formatter string
	Args      []string
}

// Reporter writes a Result to w.
type Reporter interface {
	Write(w io.Writer, r *Result) error
}

// New returns the reporter for format ("text" or "json").
func New(format string, useColour bool) (Reporter, error) {
	switch format {
	case "", "text":
		return &TextReporter{UseColour: useColour}, nil
	case "json":
		return &JSONReporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}
