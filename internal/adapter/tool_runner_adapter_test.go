package adapter

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

func writeTool(t *testing.T, script string) m.Path {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	path := filepath.Join(t.TempDir(), "inline-namespaces")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))

	return m.Path(path)
}

func TestLocalToolRunnerAdapter_Capture(t *testing.T) {
	runner := NewLocalToolRunnerAdapter()

	t.Run("returns stdout", func(t *testing.T) {
		tool := writeTool(t, "echo \"args: $*\"\necho diagnostics >&2\n")

		var stderr bytes.Buffer
		out, err := runner.Capture(context.Background(), m.ToolCommand{Executable: tool, Args: []string{"--dump", "a.cpp"}}, &stderr)
		require.NoError(t, err)

		assert.Equal(t, "args: --dump a.cpp\n", string(out))
		assert.Equal(t, "diagnostics\n", stderr.String())
	})

	t.Run("nil stderr discards diagnostics", func(t *testing.T) {
		tool := writeTool(t, "echo diagnostics >&2\n")

		out, err := runner.Capture(context.Background(), m.ToolCommand{Executable: tool}, nil)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("non-zero exit", func(t *testing.T) {
		tool := writeTool(t, "echo partial\nexit 3\n")

		out, err := runner.Capture(context.Background(), m.ToolCommand{Executable: tool}, nil)
		assert.Nil(t, out)

		var toolErr *ToolError
		require.True(t, errors.As(err, &toolErr))
		assert.Equal(t, 3, toolErr.ExitCode)
		assert.Equal(t, "error while refactoring: "+string(tool)+" exited with status 3", err.Error())
	})

	t.Run("missing executable", func(t *testing.T) {
		missing := m.Path(filepath.Join(t.TempDir(), "missing"))

		_, err := runner.Capture(context.Background(), m.ToolCommand{Executable: missing}, nil)

		var toolErr *ToolError
		require.True(t, errors.As(err, &toolErr))
		assert.Equal(t, -1, toolErr.ExitCode)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLocalToolRunnerAdapter_Run(t *testing.T) {
	runner := NewLocalToolRunnerAdapter()
	tool := writeTool(t, "echo rewritten\necho warning >&2\n")

	var stdout, stderr bytes.Buffer
	err := runner.Run(context.Background(), m.ToolCommand{Executable: tool, Args: []string{"--overwrite"}}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "rewritten\n", stdout.String())
	assert.Equal(t, "warning\n", stderr.String())
}
