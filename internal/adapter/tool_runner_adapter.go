package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

// ToolError reports an external tool that could not be started or exited
// with a non-zero status. It is a malfunction of the tool or of its
// invocation, never a content mismatch.
type ToolError struct {
	Command  m.ToolCommand
	ExitCode int
	Err      error
}

func (e *ToolError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("error while refactoring: %s exited with status %d", e.Command.Executable, e.ExitCode)
	}

	return fmt.Sprintf("error while refactoring: %s: %v", e.Command.Executable, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// ToolRunnerAdapter abstracts running the external refactoring tools.
// Calls block until the process exits; no timeout is applied.
type ToolRunnerAdapter interface {
	// Capture runs cmd and returns its standard output. The diagnostic
	// stream goes to stderr, or is discarded when stderr is nil.
	Capture(ctx context.Context, cmd m.ToolCommand, stderr io.Writer) ([]byte, error)

	// Run runs cmd with both streams attached to the given writers.
	Run(ctx context.Context, cmd m.ToolCommand, stdout, stderr io.Writer) error
}

// LocalToolRunnerAdapter provides a concrete implementation using os/exec.
type LocalToolRunnerAdapter struct{}

// NewLocalToolRunnerAdapter constructs a LocalToolRunnerAdapter.
func NewLocalToolRunnerAdapter() *LocalToolRunnerAdapter {
	return &LocalToolRunnerAdapter{}
}

// Capture runs cmd collecting standard output.
func (a *LocalToolRunnerAdapter) Capture(ctx context.Context, cmd m.ToolCommand, stderr io.Writer) ([]byte, error) {
	var stdout bytes.Buffer

	if stderr == nil {
		stderr = io.Discard
	}

	if err := a.Run(ctx, cmd, &stdout, stderr); err != nil {
		return nil, err
	}

	return stdout.Bytes(), nil
}

// Run runs cmd to completion.
func (a *LocalToolRunnerAdapter) Run(ctx context.Context, cmd m.ToolCommand, stdout, stderr io.Writer) error {
	// #nosec G204 - the executable comes from the configured tools directory
	process := exec.CommandContext(ctx, string(cmd.Executable), cmd.Args...)
	process.Stdout = stdout
	process.Stderr = stderr

	err := process.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ToolError{Command: cmd, ExitCode: exitErr.ExitCode(), Err: err}
	}

	return &ToolError{Command: cmd, ExitCode: -1, Err: err}
}
