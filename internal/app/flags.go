package app

import (
	"fmt"

	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*formatValue)(nil)
	_ pflag.Value = (*placeholderValue)(nil)
)

// formatValue implements pflag.Value to provide a custom type name in help text
// and validation for output formats.
type formatValue string

func (f *formatValue) String() string {
	return string(*f)
}

func (f *formatValue) Set(v string) error {
	if v != "json" && v != "text" {
		return fmt.Errorf("must be 'text' or 'json'")
	}
	*f = formatValue(v)
	return nil
}

func (f *formatValue) Type() string {
	return "<format>"
}

// placeholderValue is a plain string flag whose help text shows a value
// placeholder, e.g. "--target <FILE>".
type placeholderValue struct {
	value       string
	placeholder string
}

func newPlaceholderValue(placeholder string) *placeholderValue {
	return &placeholderValue{placeholder: placeholder}
}

func (p *placeholderValue) String() string {
	return p.value
}

func (p *placeholderValue) Set(v string) error {
	p.value = v
	return nil
}

func (p *placeholderValue) Type() string {
	return "<" + p.placeholder + ">"
}
