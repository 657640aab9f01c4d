// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nscmd/nscmd/pkg/loader"
	"github.com/nscmd/nscmd/pkg/manifest"
	"github.com/nscmd/nscmd/pkg/scan"
	"github.com/nscmd/nscmd/pkg/types"
)

const (
	// DefaultManifest is the manifest path used when none is configured.
	DefaultManifest = "composer.json"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidLoadOptions is the sentinel error wrapped by InvalidLoadOptionsError.
	ErrInvalidLoadOptions = errors.New("invalid load options")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError collects the field errors of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// InvalidLoadOptionsError collects the field errors of LoadOptions.
	InvalidLoadOptionsError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Manifest is the path of the JSON manifest.
		Manifest string `json:"manifest" mapstructure:"manifest" toml:"manifest"`
		// Namespace is the namespace whose commands are loaded.
		Namespace string `json:"namespace" mapstructure:"namespace" toml:"namespace"`
		// Extension is the file extension of command sources.
		Extension string `json:"extension" mapstructure:"extension" toml:"extension"`
		// Section is the dotted field path of the prefix mapping.
		Section string `json:"section" mapstructure:"section" toml:"section"`
		// MatchPolicy selects how competing prefixes are chosen.
		MatchPolicy manifest.MatchPolicy `json:"match_policy" mapstructure:"match_policy" toml:"match_policy"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui" toml:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables debug logging and error chains
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme" toml:"color_scheme"`
	}
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Manifest:    DefaultManifest,
		Namespace:   string(loader.DefaultNamespace),
		Extension:   scan.DefaultExtension,
		Section:     manifest.DefaultSection,
		MatchPolicy: manifest.MatchFirstDeclared,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// Validate checks every field and returns an *InvalidConfigError listing
// all failures.
func (c Config) Validate() error {
	var errs []error
	if err := types.FilesystemPath(c.Manifest).Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := types.NewNamespace(c.Namespace).Validate(); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(strings.TrimPrefix(c.Extension, ".")) == "" {
		errs = append(errs, fmt.Errorf("extension %q must be non-empty", c.Extension))
	}
	if strings.TrimSpace(c.Section) == "" {
		errs = append(errs, errors.New("section must be non-empty"))
	}
	if err := c.MatchPolicy.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// Validate returns an error unless cs is a known color scheme.
func (cs ColorScheme) Validate() error {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: cs}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig and the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Error implements the error interface for InvalidLoadOptionsError.
func (e *InvalidLoadOptionsError) Error() string {
	return fmt.Sprintf("invalid load options: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidLoadOptions for errors.Is() compatibility.
func (e *InvalidLoadOptionsError) Unwrap() error { return ErrInvalidLoadOptions }
