package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gofrs/flock"

	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

// ErrMalformedDatabase is returned when compile_commands.json cannot be decoded.
var ErrMalformedDatabase = errors.New("malformed compilation database")

const compileDBIndent = "    "

// CompileDBStore loads and stores a whole compilation database.
type CompileDBStore interface {
	Load(ctx context.Context, path m.Path) ([]m.CompilationEntry, error)
	Save(ctx context.Context, path m.Path, entries []m.CompilationEntry) error
	// Lock takes an exclusive advisory lock next to the database. The
	// returned function releases it.
	Lock(ctx context.Context, path m.Path) (func() error, error)
}

type compileDBStore struct {
	fs SourceFSAdapter
}

// NewCompileDBStore returns a JSON CompileDBStore writing through fs.
func NewCompileDBStore(fs SourceFSAdapter) CompileDBStore {
	return &compileDBStore{fs: fs}
}

func (s *compileDBStore) Load(ctx context.Context, path m.Path) ([]m.CompilationEntry, error) {
	data, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read compilation database: %w", err)
	}

	var entries []m.CompilationEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrMalformedDatabase, path, err)
	}

	slog.Debug("loaded compilation database", "path", path, "entries", len(entries))

	return entries, nil
}

func (s *compileDBStore) Save(ctx context.Context, path m.Path, entries []m.CompilationEntry) error {
	if entries == nil {
		entries = []m.CompilationEntry{}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", compileDBIndent)

	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode compilation database: %w", err)
	}

	perm := os.FileMode(0o644)
	if info, err := s.fs.FileInfo(ctx, path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := s.fs.WriteFileAtomic(ctx, path, buf.Bytes(), perm); err != nil {
		return fmt.Errorf("write compilation database: %w", err)
	}

	slog.Debug("saved compilation database", "path", path, "entries", len(entries))

	return nil
}

func (s *compileDBStore) Lock(ctx context.Context, path m.Path) (func() error, error) {
	lock := flock.New(string(path) + ".lock")

	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("lock compilation database: %w", err)
	}

	if err := ctx.Err(); err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	return lock.Unlock, nil
}
