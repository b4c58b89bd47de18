// Package config holds the per-run options record and the optional settings file.
package config

// DefaultFileName is written inside a directory target.
const DefaultFileName = "main.rs"

// Options is the record built from the command line. It is created once per run
// and never modified; use WithDefaults to derive a filled-in copy.
type Options struct {
	// Target is the file or directory the code is written to.
	Target string
	// Code is written verbatim.
	Code string
	// RustfmtConfig is passed to rustfmt --config-path when non-empty.
	RustfmtConfig string
	// RustVersion is passed to rustfmt --edition when non-empty.
	RustVersion string
}

// NewOptions builds an Options record. Presence of target and code is enforced by
// the flag parser, so no validation happens here.
func NewOptions(target, code, rustfmtConfig, rustVersion string) Options {
	return Options{
		Target:        target,
		Code:          code,
		RustfmtConfig: rustfmtConfig,
		RustVersion:   rustVersion,
	}
}

// WithDefaults returns a copy of o with empty optional fields taken from s.
// Values given on the command line always win.
func (o Options) WithDefaults(s *Settings) Options {
	if s == nil {
		return o
	}
	if o.RustfmtConfig == "" {
		o.RustfmtConfig = s.Defaults.RustfmtConfig
	}
	if o.RustVersion == "" {
		o.RustVersion = s.Defaults.RustVersion
	}
	return o
}
