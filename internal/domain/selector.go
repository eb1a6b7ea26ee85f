package domain

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"

	"usdrefactor.dev/pkg/usdrefactor/internal/adapter"
	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

// DefaultModule is refactored when the caller names no module.
const DefaultModule m.ModulePath = "pxr"

// SelectArgs contains the arguments for selecting the files of one tool.
type SelectArgs struct {
	Layout  m.Layout
	Modules []m.ModulePath
	Tool    m.ToolID
}

// Selector decides which files of a source tree a tool may rewrite.
type Selector interface {
	// Select returns the eligible files in walk order, without duplicates.
	Select(ctx context.Context, args SelectArgs) ([]m.Path, error)
	// Explain returns a decision for every candidate file in walk order.
	Explain(ctx context.Context, args SelectArgs) ([]m.Decision, error)
}

type selector struct {
	adapter.SourceFSAdapter
}

// NewSelector creates a Selector reading the tree through fsAdapter.
func NewSelector(fsAdapter adapter.SourceFSAdapter) Selector {
	return &selector{SourceFSAdapter: fsAdapter}
}

func (s *selector) Select(ctx context.Context, args SelectArgs) ([]m.Path, error) {
	decisions, err := s.Explain(ctx, args)
	if err != nil {
		return nil, err
	}

	files := make([]m.Path, 0, len(decisions))
	for _, decision := range decisions {
		if !decision.Excluded {
			files = append(files, decision.Path)
		}
	}

	slog.Debug("selected files", "tool", args.Tool, "candidates", len(decisions), "selected", len(files))

	return files, nil
}

func (s *selector) Explain(ctx context.Context, args SelectArgs) ([]m.Decision, error) {
	rules, err := RulesFor(args.Tool)
	if err != nil {
		return nil, err
	}

	modules := args.Modules
	if len(modules) == 0 {
		modules = []m.ModulePath{DefaultModule}
	}

	root := m.Path(filepath.Clean(string(args.Layout.ProjectPath)))
	walk := &selectionWalk{fs: s.SourceFSAdapter, root: root, rules: rules, seen: map[m.Path]struct{}{}}

	for _, module := range modules {
		dir := s.JoinPath(ctx, string(root), string(module))
		if err := walk.dir(ctx, dir); err != nil {
			return nil, err
		}
	}

	return walk.decisions, nil
}

type selectionWalk struct {
	fs        adapter.SourceFSAdapter
	root      m.Path
	rules     []Rule
	seen      map[m.Path]struct{}
	decisions []m.Decision
}

// dir visits the files of dir in name order, then descends into its
// sub-directories in name order.
func (w *selectionWalk) dir(ctx context.Context, dir m.Path) error {
	files, dirs, err := w.fs.ReadDir(ctx, dir)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("module directory does not exist", "dir", dir)
		} else {
			slog.Warn("skipping unreadable directory", "dir", dir, "error", err)
		}

		return nil
	}

	for _, name := range files {
		path := w.fs.JoinPath(ctx, string(dir), name)
		if _, dup := w.seen[path]; dup {
			continue
		}

		w.seen[path] = struct{}{}

		excluded, rule := Evaluate(w.rules, m.NewSourceFile(w.root, path))
		w.decisions = append(w.decisions, m.Decision{Path: path, Excluded: excluded, Rule: rule})
	}

	for _, name := range dirs {
		if err := w.dir(ctx, w.fs.JoinPath(ctx, string(dir), name)); err != nil {
			return err
		}
	}

	return nil
}
