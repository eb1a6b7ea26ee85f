// Package adapter contains the infrastructure adapters (filesystem, external
// tool processes, compilation database persistence) used by the domain layer.
package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning source trees and fixtures. It intentionally hides
// direct `os` access so the selection and harness logic can be tested
// without touching the disk.
type SourceFSAdapter interface {
	// ReadDir lists the entries of dir split into regular files and
	// sub-directories, both sorted lexicographically.
	ReadDir(ctx context.Context, dir m.Path) (files []string, dirs []string, err error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFileAtomic replaces path with content in a single rename so
	// readers never observe a partially written file.
	WriteFileAtomic(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// Abs returns an absolute, cleaned representation of path.
	Abs(ctx context.Context, path m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadDir lists dir. Symlinks to directories are reported as files, the
// walk never follows them.
func (a *LocalSourceFSAdapter) ReadDir(ctx context.Context, dir m.Path) ([]string, []string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, nil, err
	}

	var files, dirs []string

	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
			continue
		}

		files = append(files, entry.Name())
	}

	sort.Strings(files)
	sort.Strings(dirs)

	return files, dirs, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - paths come from the project or fixture tree
	return os.ReadFile(string(path))
}

// WriteFileAtomic writes content to a temporary sibling of path and renames
// it into place.
func (a *LocalSourceFSAdapter) WriteFileAtomic(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := string(path)

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		cleanup()

		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()

		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		cleanup()
		return fmt.Errorf("replace %s: %w", target, err)
	}

	return nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// Abs returns the absolute form of path.
func (a *LocalSourceFSAdapter) Abs(ctx context.Context, path m.Path) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
