package domain

import (
	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

// Flags understood by the refactoring tools.
const (
	flagBuildPath   = "-p"
	flagDump        = "--dump"
	flagOverwrite   = "--overwrite"
	flagRoot        = "--root"
	flagFilePattern = "--file-pattern"
)

// DumpCommand builds the non-destructive invocation printing the rewrite
// of original to stdout.
func DumpCommand(layout m.Layout, tool m.ToolID, original m.Path) m.ToolCommand {
	return m.ToolCommand{
		Executable: layout.Executable(tool),
		Args: []string{
			flagDump,
			flagBuildPath, string(layout.BuildDir()),
			flagFilePattern, layout.FilePattern(),
			string(original),
		},
	}
}

// OverwriteCommand builds the invocation rewriting files in place.
func OverwriteCommand(layout m.Layout, tool m.ToolID, policy ToolPolicy, files []m.Path) m.ToolCommand {
	args := []string{
		flagBuildPath, string(layout.BuildDir()),
		flagOverwrite,
		flagRoot, string(layout.ProjectPath),
	}

	if policy.FilePattern {
		args = append(args, flagFilePattern, layout.FilePattern())
	}

	for _, file := range files {
		args = append(args, string(file))
	}

	return m.ToolCommand{Executable: layout.Executable(tool), Args: args}
}
