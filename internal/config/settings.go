package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/andyballingall/rust-code-uploader/internal/fsh"
	"github.com/andyballingall/rust-code-uploader/internal/validator"
)

const (
	// SettingsFile is looked for in the working directory.
	SettingsFile = ".rcu.yml"
	// SettingsEnvVar names an explicit settings file. When set the file must exist.
	SettingsEnvVar = "RCU_CONFIG"

	settingsSchemaID = "https://rcu.local/settings.schema.json"
)

//go:embed settings.schema.json
var settingsSchema []byte

type FormatterSettings struct {
	// Name is the logical formatter name handed to the version manager.
	Name string `yaml:"name"`
	// Path skips discovery entirely.
	Path string `yaml:"path"`
	// VersionManager is the command run as `<VersionManager> which <Name>`.
	VersionManager string `yaml:"versionManager"`
	// SearchPath enables a PATH lookup when the version manager cannot be run.
	SearchPath bool `yaml:"searchPath"`
}

type Defaults struct {
	RustfmtConfig string `yaml:"rustfmtConfig"`
	RustVersion   string `yaml:"rustVersion"`
	DetectEdition bool   `yaml:"detectEdition"`
}

type Settings struct {
	Formatter FormatterSettings `yaml:"formatter"`
	Defaults  Defaults          `yaml:"defaults"`
	// Source is the file the settings were read from, or "" for built-in defaults.
	Source string `yaml:"-"`
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Formatter: FormatterSettings{
			Name:           "rustfmt",
			VersionManager: "rustup",
		},
	}
}

// LoadSettings reads the settings file named by RCU_CONFIG, or SettingsFile in
// workDir. A missing SettingsFile yields DefaultSettings.
func LoadSettings(env fsh.EnvProvider, workDir string, compiler validator.Compiler) (*Settings, error) {
	path := env.Get(SettingsEnvVar)
	explicit := path != ""
	if !explicit {
		path = filepath.Join(workDir, SettingsFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if explicit {
				return nil, &MissingSettingsError{Path: path}
			}
			return DefaultSettings(), nil
		}
		return nil, err
	}

	return ParseSettings(path, data, compiler)
}

// ParseSettings decodes and validates a settings document read from path.
// Relative paths inside the document are resolved against the document's directory.
func ParseSettings(path string, data []byte, compiler validator.Compiler) (*Settings, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &InvalidYAMLError{Path: path, Wrapped: err}
	}

	s := DefaultSettings()
	s.Source = path
	if raw == nil {
		// empty document
		return s, nil
	}

	if err := validateSettings(raw, compiler); err != nil {
		return nil, &InvalidSettingsError{Path: path, Wrapped: err}
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, &InvalidYAMLError{Path: path, Wrapped: err}
	}
	s.Formatter.Name = orDefault(s.Formatter.Name, "rustfmt")
	s.Formatter.VersionManager = orDefault(s.Formatter.VersionManager, "rustup")

	base := filepath.Dir(path)
	s.Defaults.RustfmtConfig = resolveRelative(base, s.Defaults.RustfmtConfig)
	s.Formatter.Path = resolveRelative(base, s.Formatter.Path)

	return s, nil
}

func validateSettings(raw any, compiler validator.Compiler) error {
	schemaDoc, err := validator.DecodeSchema(settingsSchema)
	if err != nil {
		return fmt.Errorf("embedded settings schema: %w", err)
	}
	if err = compiler.AddSchema(settingsSchemaID, schemaDoc); err != nil {
		return err
	}
	v, err := compiler.Compile(settingsSchemaID)
	if err != nil {
		return err
	}

	// Round trip through JSON so the validator sees the same shapes it would
	// from a JSON document.
	js, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	doc, err := validator.DecodeDocument(js)
	if err != nil {
		return err
	}
	return v.Validate(doc)
}

func resolveRelative(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
