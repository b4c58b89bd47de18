package report

import (
	"io"

	"github.com/fatih/color"
)

// TextReporter prints the single confirmation line.
type TextReporter struct {
	UseColour bool
}

func (tr *TextReporter) Write(w io.Writer, _ *Result) error {
	c := color.New(color.FgGreen)
	if tr.UseColour {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	_, err := c.Fprintln(w, SuccessMessage)
	return err
}
