package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usdrefactor.dev/pkg/usdrefactor/internal/adapter"
	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()

	for _, file := range files {
		path := filepath.Join(root, file)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("// "+file+"\n"), 0o644))
	}
}

func newTestProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeTree(t, root,
		"pxr/base/tf/token.h",
		"pxr/base/tf/token.cpp",
		"pxr/base/tf/wrapToken.py",
		"pxr/base/js/json.h",
		"pxr/base/js/rapidjson/document.h",
		"pxr/base/arch.h",
	)

	return root
}

func relPaths(t *testing.T, root string, paths []m.Path) []string {
	t.Helper()

	rel := make([]string, 0, len(paths))
	for _, path := range paths {
		r, err := filepath.Rel(root, string(path))
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}

	return rel
}

func TestSelector_Select(t *testing.T) {
	root := newTestProject(t)
	selector := NewSelector(adapter.NewLocalSourceFSAdapter())

	t.Run("disambiguate symbols skips js", func(t *testing.T) {
		files, err := selector.Select(context.Background(), SelectArgs{
			Layout: m.Layout{ProjectPath: m.Path(root)},
			Tool:   m.DisambiguateSymbols,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"pxr/base/arch.h",
			"pxr/base/tf/token.cpp",
			"pxr/base/tf/token.h",
		}, relPaths(t, root, files))
	})

	t.Run("inline namespaces keeps js", func(t *testing.T) {
		files, err := selector.Select(context.Background(), SelectArgs{
			Layout: m.Layout{ProjectPath: m.Path(root)},
			Tool:   m.InlineNamespaces,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"pxr/base/arch.h",
			"pxr/base/js/json.h",
			"pxr/base/tf/token.cpp",
			"pxr/base/tf/token.h",
		}, relPaths(t, root, files))
	})

	t.Run("module order drives output order without duplicates", func(t *testing.T) {
		files, err := selector.Select(context.Background(), SelectArgs{
			Layout:  m.Layout{ProjectPath: m.Path(root)},
			Modules: []m.ModulePath{"pxr/base/tf", "pxr", "pxr/base/tf"},
			Tool:    m.DisambiguateSymbols,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"pxr/base/tf/token.cpp",
			"pxr/base/tf/token.h",
			"pxr/base/arch.h",
		}, relPaths(t, root, files))
	})

	t.Run("missing module selects nothing", func(t *testing.T) {
		files, err := selector.Select(context.Background(), SelectArgs{
			Layout:  m.Layout{ProjectPath: m.Path(root)},
			Modules: []m.ModulePath{"pxr/imaging"},
			Tool:    m.InlineNamespaces,
		})
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("repeated runs agree", func(t *testing.T) {
		args := SelectArgs{Layout: m.Layout{ProjectPath: m.Path(root)}, Tool: m.InlineNamespaces}

		first, err := selector.Select(context.Background(), args)
		require.NoError(t, err)

		second, err := selector.Select(context.Background(), args)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, err := selector.Select(context.Background(), SelectArgs{
			Layout: m.Layout{ProjectPath: m.Path(root)},
			Tool:   "reformat",
		})
		assert.ErrorIs(t, err, m.ErrUnknownTool)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := selector.Select(ctx, SelectArgs{
			Layout: m.Layout{ProjectPath: m.Path(root)},
			Tool:   m.InlineNamespaces,
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSelector_Explain(t *testing.T) {
	root := newTestProject(t)
	selector := NewSelector(adapter.NewLocalSourceFSAdapter())

	decisions, err := selector.Explain(context.Background(), SelectArgs{
		Layout: m.Layout{ProjectPath: m.Path(root)},
		Tool:   m.DisambiguateSymbols,
	})
	require.NoError(t, err)

	byPath := map[string]m.Decision{}
	for _, decision := range decisions {
		rel, err := filepath.Rel(root, string(decision.Path))
		require.NoError(t, err)
		byPath[filepath.ToSlash(rel)] = decision
	}

	require.Len(t, byPath, 6)
	assert.False(t, byPath["pxr/base/tf/token.h"].Excluded)
	assert.Equal(t, "js", byPath["pxr/base/js/json.h"].Rule)
	assert.Equal(t, "rapidjson", byPath["pxr/base/js/rapidjson/document.h"].Rule)
	assert.Equal(t, "source-extension", byPath["pxr/base/tf/wrapToken.py"].Rule)
}
