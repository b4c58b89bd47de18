package report

import (
	"encoding/json"
	"io"
)

// JSONReporter implements Reporter for machine-readable output.
type JSONReporter struct{}

type jsonOutput struct {
	Message   string   `json:"message"`
	Target    string   `json:"target"`
	Written   string   `json:"written"`
	Bytes     int      `json:"bytes"`
	Formatter string   `json:"formatter"`
	Args      []string `json:"args"`
}

func (jr *JSONReporter) Write(w io.Writer, r *Result) error {
	out := jsonOutput{
		Message:   SuccessMessage,
		Target:    r.Target,
		Written:   r.Written,
		Bytes:     r.Bytes,
		Formatter: r.Formatter,
		Args:      r.Args,
	}
	if out.Args == nil {
		out.Args = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
