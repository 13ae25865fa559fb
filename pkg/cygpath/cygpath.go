// Package cygpath translates paths between the native filesystem and the
// POSIX emulation layer by invoking the layer's translation utility.
package cygpath

import (
	"context"
	"strings"

	"github.com/arthur-debert/linkfix/pkg/errors"
	"github.com/arthur-debert/linkfix/pkg/executor"
	"github.com/arthur-debert/linkfix/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultNativeFlag makes cygpath print native (windows) paths
const DefaultNativeFlag = "--windows"

// Translator converts single paths with an external translation command.
// Translation is assumed deterministic and side-effect free; failures are
// not retried.
type Translator struct {
	exec       executor.CommandExecutor
	binary     string
	nativeFlag string
	logger     zerolog.Logger
}

// New creates a Translator running binary through exec
func New(exec executor.CommandExecutor, binary, nativeFlag string) *Translator {
	if nativeFlag == "" {
		nativeFlag = DefaultNativeFlag
	}
	return &Translator{
		exec:       exec,
		binary:     binary,
		nativeFlag: nativeFlag,
		logger:     logging.GetLogger("cygpath"),
	}
}

// Binary is the translation command, for embedding in shell pipelines
func (t *Translator) Binary() string {
	return t.binary
}

// NativeFlag is the flag selecting native output
func (t *Translator) NativeFlag() string {
	return t.nativeFlag
}

// ToEmulation maps a native path into the emulation layer's path space
func (t *Translator) ToEmulation(ctx context.Context, nativePath string) (string, error) {
	return t.translate(ctx, nativePath)
}

// ToNative maps an emulation-layer path back to a native path
func (t *Translator) ToNative(ctx context.Context, emulationPath string) (string, error) {
	return t.translate(ctx, emulationPath, t.nativeFlag)
}

func (t *Translator) translate(ctx context.Context, path string, flags ...string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "path to translate is required")
	}

	args := append(append([]string(nil), flags...), path)
	res, err := t.exec.Run(ctx, t.binary, args...)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTranslation, "failed to translate %s", path).
			WithDetail("path", path)
	}

	out := strings.TrimRight(res.Stdout, " \t\r\n")
	if out == "" || strings.ContainsAny(out, "\r\n") {
		return "", errors.Newf(errors.ErrTranslation, "unusable translator output for %s", path).
			WithDetail("path", path).
			WithDetail("output", res.Stdout)
	}

	t.logger.Trace().
		Str("from", path).
		Str("to", out).
		Msg("Translated path")

	return out, nil
}
