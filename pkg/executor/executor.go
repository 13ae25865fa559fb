package executor

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"

	"github.com/arthur-debert/linkfix/pkg/errors"
	"github.com/arthur-debert/linkfix/pkg/logging"
	"github.com/rs/zerolog"
)

// Result is the captured outcome of one command
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandExecutor runs a command to completion and captures its output.
// A non-zero exit status or a failure to start is returned as an error
// coded errors.ErrCommandExecute; the Result is still populated with
// whatever was captured.
type CommandExecutor interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// OSExecutor runs commands with os/exec
type OSExecutor struct {
	logger zerolog.Logger
}

// NewOSExecutor creates a new command executor backed by the OS
func NewOSExecutor() *OSExecutor {
	return &OSExecutor{
		logger: logging.GetLogger("executor"),
	}
}

// Run executes name with args and waits for it to exit. There is no
// timeout beyond what ctx imposes.
func (e *OSExecutor) Run(ctx context.Context, name string, args ...string) (Result, error) {
	if name == "" {
		return Result{}, errors.New(errors.ErrInvalidInput, "command name is required")
	}

	logging.LogCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: 0,
	}

	if stderr.Len() > 0 {
		e.logger.Debug().
			Str("command", name).
			Str("output", result.Stderr).
			Msg("Command stderr")
	}

	if err != nil {
		result.ExitCode = -1
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		}

		e.logger.Error().
			Err(err).
			Str("command", name).
			Strs("args", args).
			Int("exitCode", result.ExitCode).
			Str("stderr", result.Stderr).
			Msg("Command execution failed")

		return result, errors.Wrapf(err, errors.ErrCommandExecute, "command failed: %s", name).
			WithDetail("exitCode", result.ExitCode).
			WithDetail("stderr", result.Stderr)
	}

	e.logger.Trace().
		Str("command", name).
		Int("stdoutBytes", stdout.Len()).
		Msg("Command executed successfully")

	return result, nil
}
