// Package model defines the data structures shared by the file selector,
// the fixture harness and the compilation database patcher.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// ModulePath is a root-relative identifier of a codebase subtree, e.g.
// "pxr" or "pxr/base/gf".
type ModulePath string

// SourceFile is a file path decomposed for rule matching. Dirs holds the
// directory segments relative to the project root.
type SourceFile struct {
	Path     Path
	Dirs     []string
	Name     string
	BaseName string
	Ext      string
}

// NewSourceFile decomposes path into its directory segments, file name,
// base name and extension. Segments are taken relative to root when path
// lives under it, otherwise from the whole path.
func NewSourceFile(root, path Path) SourceFile {
	full := filepath.Clean(string(path))

	dir, name := filepath.Split(full)
	if rel, err := filepath.Rel(string(root), filepath.Dir(full)); err == nil && !strings.HasPrefix(rel, "..") {
		dir = rel
	}

	ext := filepath.Ext(name)

	return SourceFile{
		Path:     Path(full),
		Dirs:     splitDirs(dir),
		Name:     name,
		BaseName: strings.TrimSuffix(name, ext),
		Ext:      ext,
	}
}

func splitDirs(dir string) []string {
	dir = strings.Trim(filepath.ToSlash(dir), "/")
	if dir == "" || dir == "." {
		return nil
	}

	return strings.Split(dir, "/")
}
