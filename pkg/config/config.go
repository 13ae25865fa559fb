package config

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/linkfix/pkg/errors"
	"github.com/arthur-debert/linkfix/pkg/paths"
)

// Discovery modes for symlink reconciliation
const (
	DiscoveryTwoStream  = "two-stream"
	DiscoverySinglePass = "single-pass"
)

// Output formats
const (
	FormatAuto = "auto"
	FormatTerm = "term"
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// markerPattern keeps the marker safe to splice into shell pipelines
var markerPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Emulation describes where the POSIX emulation layer is installed and how
// to invoke its shell and path translator.
type Emulation struct {
	BaseDir    string   `koanf:"base_dir" toml:"base_dir" yaml:"base_dir"`
	Shell      string   `koanf:"shell" toml:"shell" yaml:"shell"`
	ShellArgs  []string `koanf:"shell_args" toml:"shell_args" yaml:"shell_args"`
	Translator string   `koanf:"translator" toml:"translator" yaml:"translator"`
	NativeFlag string   `koanf:"native_flag" toml:"native_flag" yaml:"native_flag"`
}

// Symlinks holds symlink reconciliation settings
type Symlinks struct {
	Marker        string `koanf:"marker" toml:"marker" yaml:"marker"`
	Discovery     string `koanf:"discovery" toml:"discovery" yaml:"discovery"`
	StagedReplace bool   `koanf:"staged_replace" toml:"staged_replace" yaml:"staged_replace"`
}

// Output holds presentation settings for the CLI
type Output struct {
	Format string `koanf:"format" toml:"format" yaml:"format"`
}

// Config is the main configuration structure
type Config struct {
	Emulation Emulation `koanf:"emulation" toml:"emulation" yaml:"emulation"`
	Symlinks  Symlinks  `koanf:"symlinks" toml:"symlinks" yaml:"symlinks"`
	Output    Output    `koanf:"output" toml:"output" yaml:"output"`
}

// ShellPath returns the executable path of the emulation shell
func (c *Config) ShellPath() string {
	return paths.ResolveBinary(c.Emulation.BaseDir, c.Emulation.Shell)
}

// TranslatorPath returns the executable path of the path translator
func (c *Config) TranslatorPath() string {
	return paths.ResolveBinary(c.Emulation.BaseDir, c.Emulation.Translator)
}

// Validate checks the values that have no sensible fallback
func (c *Config) Validate() error {
	if c.Emulation.Shell == "" {
		return errors.New(errors.ErrConfigValid, "emulation.shell must not be empty")
	}
	if c.Emulation.Translator == "" {
		return errors.New(errors.ErrConfigValid, "emulation.translator must not be empty")
	}
	if strings.TrimSpace(c.Symlinks.Marker) == "" {
		return errors.New(errors.ErrConfigValid, "symlinks.marker must not be empty")
	}
	if !markerPattern.MatchString(c.Symlinks.Marker) {
		return errors.Newf(errors.ErrConfigValid, "symlinks.marker %q may only contain letters, digits, '.', '_' and '-'", c.Symlinks.Marker)
	}

	switch c.Symlinks.Discovery {
	case DiscoveryTwoStream, DiscoverySinglePass:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown symlinks.discovery %q", c.Symlinks.Discovery).
			WithDetail("allowed", []string{DiscoveryTwoStream, DiscoverySinglePass})
	}

	switch c.Output.Format {
	case FormatAuto, FormatTerm, FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown output.format %q", c.Output.Format)
	}

	return nil
}
