package config

import (
	"fmt"
)

type MissingSettingsError struct {
	Path string
}

func (e *MissingSettingsError) Error() string {
	return fmt.Sprintf("settings file %s (from %s) does not exist", e.Path, SettingsEnvVar)
}

type InvalidYAMLError struct {
	Path    string
	Wrapped error
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("%s is not a valid yaml document: %v", e.Path, e.Wrapped)
}

func (e *InvalidYAMLError) Unwrap() error {
	return e.Wrapped
}

type InvalidSettingsError struct {
	Path    string
	Wrapped error
}

func (e *InvalidSettingsError) Error() string {
	return fmt.Sprintf("%s does not match the settings schema: %v", e.Path, e.Wrapped)
}

func (e *InvalidSettingsError) Unwrap() error {
	return e.Wrapped
}
