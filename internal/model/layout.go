package model

import "path/filepath"

// Layout carries the install and project locations every component needs.
type Layout struct {
	// ProjectPath is the root of the codebase being refactored.
	ProjectPath Path
	// BinDir holds one executable per ToolID.
	BinDir Path
	// FixturesDir holds the {tool}/{test}/ golden fixture tree.
	FixturesDir Path
}

// BuildDir is the build tree holding the compilation database.
func (l Layout) BuildDir() Path {
	return Path(filepath.Join(string(l.ProjectPath), "build"))
}

// CompileDBPath is the location of compile_commands.json.
func (l Layout) CompileDBPath() Path {
	return Path(filepath.Join(string(l.BuildDir()), "compile_commands.json"))
}

// FilePattern is the --file-pattern value scoping rewrites to the project.
func (l Layout) FilePattern() string {
	return filepath.Join(string(l.ProjectPath), "*")
}

// Executable returns the binary implementing tool.
func (l Layout) Executable(tool ToolID) Path {
	return Path(filepath.Join(string(l.BinDir), string(tool)))
}
