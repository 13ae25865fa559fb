// Package cli holds the state shared by linkfix subcommands: persistent
// flag values and the helpers that turn them into a configuration, a
// renderer and a context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/arthur-debert/linkfix/pkg/config"
	"github.com/arthur-debert/linkfix/pkg/errors"
	"github.com/arthur-debert/linkfix/pkg/executor"
	"github.com/arthur-debert/linkfix/pkg/ownership"
	"github.com/arthur-debert/linkfix/pkg/ui"
	"github.com/spf13/cobra"
)

// Settings are the persistent flag values of the root command
type Settings struct {
	Verbosity  int
	DryRun     bool
	ConfigFile string
	BaseDir    string
	Format     string
	Timeout    time.Duration

	// Executor and Platform default to the host implementations when nil
	Executor executor.CommandExecutor
	Platform ownership.Platform
}

// Bind registers the persistent flags on cmd
func (s *Settings) Bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.CountVarP(&s.Verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&s.DryRun, "dry-run", false, MsgFlagDryRun)
	flags.StringVarP(&s.ConfigFile, "config", "c", "", MsgFlagConfig)
	flags.StringVar(&s.BaseDir, "base-dir", "", MsgFlagBaseDir)
	flags.StringVarP(&s.Format, "format", "f", "", MsgFlagFormat)
	flags.DurationVar(&s.Timeout, "timeout", 0, MsgFlagTimeout)
}

// Flag descriptions
const (
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/linkfix/config.toml)"
	MsgFlagBaseDir = "Base installation directory of the emulation layer"
	MsgFlagFormat  = "Output format: auto, term, text, json, yaml"
	MsgFlagTimeout = "Abort external commands after this long (0 disables)"
)

// LoadConfig loads the layered configuration with flag overrides applied
func (s *Settings) LoadConfig() (*config.Config, error) {
	overrides := map[string]interface{}{}
	if s.BaseDir != "" {
		overrides["emulation.base_dir"] = s.BaseDir
	}
	if s.Format != "" {
		overrides["output.format"] = s.Format
	}
	return config.Load(config.LoadOptions{
		ConfigFile: s.ConfigFile,
		Overrides:  overrides,
	})
}

// Renderer builds the renderer for the configured output format
func (s *Settings) Renderer(cfg *config.Config, w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid output format")
	}
	return ui.NewRenderer(format, w)
}

// RenderError writes err with the json or yaml renderer when one of those
// formats is selected and reports whether it did. Other formats leave error
// reporting to the caller.
func (s *Settings) RenderError(w io.Writer, err error) bool {
	name := s.Format
	if name == "" {
		cfg, cerr := s.LoadConfig()
		if cerr != nil {
			return false
		}
		name = cfg.Output.Format
	}
	format, perr := ui.ParseFormat(name)
	if perr != nil || (format != ui.FormatJSON && format != ui.FormatYAML) {
		return false
	}
	renderer, rerr := ui.NewRenderer(format, w)
	if rerr != nil {
		return false
	}
	return renderer.RenderError(err) == nil
}

// Context derives the context for external commands, bounded by --timeout
// when set
func (s *Settings) Context(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if s.Timeout > 0 {
		return context.WithTimeout(parent, s.Timeout)
	}
	return context.WithCancel(parent)
}

// CommandExecutor returns the executor for external commands
func (s *Settings) CommandExecutor() executor.CommandExecutor {
	if s.Executor != nil {
		return s.Executor
	}
	return executor.NewOSExecutor()
}

// OwnershipSetter returns a Setter backed by the configured Platform
func (s *Settings) OwnershipSetter() *ownership.Setter {
	return ownership.NewSetter(ownership.Options{Platform: s.Platform})
}
