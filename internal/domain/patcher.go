package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"usdrefactor.dev/pkg/usdrefactor/internal/adapter"
	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

const includeFlag = "-I"

// PatchSummary counts the entries seen and rewritten by a patch pass.
type PatchSummary struct {
	Database m.Path
	Entries  int
	Patched  int
}

// Patcher rewrites a compilation database so the source tree is searched
// for headers before the staged copies in the build tree.
type Patcher interface {
	Patch(ctx context.Context, projectPath m.Path) (PatchSummary, error)
}

type patcher struct {
	adapter.SourceFSAdapter
	adapter.CompileDBStore
}

// NewPatcher creates a Patcher backed by the given adapters.
func NewPatcher(fsAdapter adapter.SourceFSAdapter, store adapter.CompileDBStore) Patcher {
	return &patcher{SourceFSAdapter: fsAdapter, CompileDBStore: store}
}

func (p *patcher) Patch(ctx context.Context, projectPath m.Path) (PatchSummary, error) {
	root, err := p.Abs(ctx, projectPath)
	if err != nil {
		return PatchSummary{}, fmt.Errorf("resolve project path: %w", err)
	}

	layout := m.Layout{ProjectPath: root}
	dbPath := layout.CompileDBPath()
	summary := PatchSummary{Database: dbPath}

	unlock, err := p.Lock(ctx, dbPath)
	if err != nil {
		return summary, err
	}

	defer func() {
		if err := unlock(); err != nil {
			slog.Warn("failed to release compilation database lock", "path", dbPath, "error", err)
		}
	}()

	entries, err := p.Load(ctx, dbPath)
	if err != nil {
		slog.Error("failed to load compilation database", "path", dbPath, "error", err)
		return summary, err
	}

	srcFlag := includeFlag + string(root)
	buildFlag := includeFlag + filepath.Join(string(layout.BuildDir()), "include")

	for i := range entries {
		patched, err := patchEntry(&entries[i], srcFlag, buildFlag)
		if err != nil {
			return summary, fmt.Errorf("entry %d (%s): %w", i, entries[i].File(), err)
		}

		if patched {
			summary.Patched++
		}
	}

	summary.Entries = len(entries)

	if err := p.Save(ctx, dbPath, entries); err != nil {
		slog.Error("failed to save compilation database", "path", dbPath, "error", err)
		return summary, err
	}

	slog.Info("patched compilation database", "path", dbPath, "entries", summary.Entries, "patched", summary.Patched)

	return summary, nil
}

func patchEntry(entry *m.CompilationEntry, srcFlag, buildFlag string) (bool, error) {
	if command, ok := entry.Command(); ok {
		patched, changed := PatchCommand(command, srcFlag, buildFlag)
		if changed {
			entry.SetCommand(patched)
		}

		return changed, nil
	}

	if args, ok := entry.Arguments(); ok {
		patched, changed := insertBefore(args, srcFlag, buildFlag)
		if changed {
			entry.SetArguments(patched)
		}

		return changed, nil
	}

	return false, fmt.Errorf("%w: no %q or %q field", adapter.ErrMalformedDatabase, m.FieldCommand, m.FieldArguments)
}

// PatchCommand inserts srcFlag before the first token of command equal to
// buildFlag and rejoins the tokens with single spaces. Commands without
// that token are returned unchanged.
func PatchCommand(command, srcFlag, buildFlag string) (string, bool) {
	tokens, changed := insertBefore(strings.Fields(command), srcFlag, buildFlag)
	if !changed {
		return command, false
	}

	return strings.Join(tokens, " "), true
}

func insertBefore(tokens []string, token, anchor string) ([]string, bool) {
	idx := slices.Index(tokens, anchor)
	if idx < 0 {
		return tokens, false
	}

	return slices.Insert(tokens, idx, token), true
}
