// Package controller provides output adapters for displaying selections,
// fixture reports and database patch results.
package controller

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

// OutputFormat selects how structured data such as rule tables is rendered.
type OutputFormat string

// Available OutputFormat values.
const (
	FormatTable OutputFormat = "table"
	FormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --format value.
func ParseOutputFormat(value string) (OutputFormat, error) {
	switch OutputFormat(value) {
	case FormatTable, FormatYAML:
		return OutputFormat(value), nil
	}

	return "", fmt.Errorf("unknown output format %q (expected %s or %s)", value, FormatTable, FormatYAML)
}

// UI defines the interface for displaying command results.
// Implementations can use different output methods (plain text, styled terminal).
type UI interface {
	DisplayFiles(ctx context.Context, files []m.Path)
	DisplayDecisions(ctx context.Context, decisions []m.Decision)
	DisplayCommand(ctx context.Context, cmd m.ToolCommand)
	DisplayFixtureStart(ctx context.Context, fixture m.FixtureCase, cmd m.ToolCommand)
	DisplayReports(ctx context.Context, reports []m.FixtureReport)
	DisplayRules(ctx context.Context, tool m.ToolID, rules []m.RuleInfo, format OutputFormat) error
	DisplayPatchSummary(ctx context.Context, database m.Path, entries, patched int)
}

// NewUI returns a styled UI for terminals and a plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
