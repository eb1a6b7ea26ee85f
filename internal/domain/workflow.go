// Package domain implements file selection for the refactoring tools, the
// golden fixture harness and the compilation database patcher.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"usdrefactor.dev/pkg/usdrefactor/internal/adapter"
	"usdrefactor.dev/pkg/usdrefactor/internal/controller"
	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

var (
	// ErrNoFiles is returned when a selection leaves nothing to refactor.
	ErrNoFiles = errors.New("no files selected")
	// ErrFixturesFailed is returned after reporting mismatching fixtures.
	ErrFixturesFailed = errors.New("fixtures failed")
)

// ListArgs contains the arguments for printing a selection.
type ListArgs struct {
	SelectArgs
	Explain bool
}

// FixArgs contains the arguments for an in-place refactoring run.
type FixArgs struct {
	SelectArgs
	DryRun  bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
}

// TestArgs contains the arguments for a fixture run.
type TestArgs struct {
	Layout  m.Layout
	Tools   []string
	Tests   []string
	Verbose bool
	Stderr  io.Writer
}

// PatchArgs contains the arguments for patching the compilation database.
type PatchArgs struct {
	ProjectPath m.Path
}

// RulesArgs contains the arguments for printing a rule table.
type RulesArgs struct {
	Tool   m.ToolID
	Format controller.OutputFormat
}

// Workflow is the entry point of every CLI command.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Fix(ctx context.Context, args FixArgs) error
	Test(ctx context.Context, args TestArgs) error
	PatchDatabase(ctx context.Context, args PatchArgs) error
	Rules(ctx context.Context, args RulesArgs) error
}

type workflow struct {
	runner adapter.ToolRunnerAdapter
	controller.UI
	Selector
	Harness
	Patcher
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	runner adapter.ToolRunnerAdapter,
	ui controller.UI,
	selector Selector,
	harness Harness,
	patcher Patcher,
) Workflow {
	return &workflow{
		runner:   runner,
		UI:       ui,
		Selector: selector,
		Harness:  harness,
		Patcher:  patcher,
	}
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if args.Explain {
		decisions, err := w.Explain(ctx, args.SelectArgs)
		if err != nil {
			return fmt.Errorf("select files: %w", err)
		}

		w.DisplayDecisions(ctx, decisions)

		return nil
	}

	files, err := w.Select(ctx, args.SelectArgs)
	if err != nil {
		return fmt.Errorf("select files: %w", err)
	}

	w.DisplayFiles(ctx, files)

	return nil
}

func (w *workflow) Fix(ctx context.Context, args FixArgs) error {
	policy, err := PolicyFor(args.Tool)
	if err != nil {
		return err
	}

	files, err := w.Select(ctx, args.SelectArgs)
	if err != nil {
		return fmt.Errorf("select files: %w", err)
	}

	if len(files) == 0 {
		slog.Warn("nothing to refactor", "tool", args.Tool, "modules", args.Modules)
		return fmt.Errorf("%w for %s", ErrNoFiles, args.Tool)
	}

	cmd := OverwriteCommand(args.Layout, args.Tool, policy, files)

	if args.DryRun || args.Verbose {
		w.DisplayCommand(ctx, cmd)
	}

	if args.DryRun {
		return nil
	}

	slog.Info("running refactoring tool", "tool", args.Tool, "files", len(files))

	if err := w.runner.Run(ctx, cmd, args.Stdout, args.Stderr); err != nil {
		slog.Error("refactoring tool failed", "tool", args.Tool, "error", err)
		return err
	}

	return nil
}

func (w *workflow) Test(ctx context.Context, args TestArgs) error {
	harnessArgs := HarnessArgs{
		Layout:  args.Layout,
		Tools:   args.Tools,
		Tests:   args.Tests,
		Verbose: args.Verbose,
		Stderr:  args.Stderr,
	}

	if args.Verbose {
		harnessArgs.OnStart = func(fixture m.FixtureCase, cmd m.ToolCommand) {
			w.DisplayFixtureStart(ctx, fixture, cmd)
		}
	}

	reports, err := w.Harness.Run(ctx, harnessArgs)
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		return nil
	}

	w.DisplayReports(ctx, reports)

	return fmt.Errorf("%w: %d", ErrFixturesFailed, len(reports))
}

func (w *workflow) PatchDatabase(ctx context.Context, args PatchArgs) error {
	summary, err := w.Patch(ctx, args.ProjectPath)
	if err != nil {
		return fmt.Errorf("patch compilation database: %w", err)
	}

	w.DisplayPatchSummary(ctx, summary.Database, summary.Entries, summary.Patched)

	return nil
}

func (w *workflow) Rules(ctx context.Context, args RulesArgs) error {
	policy, err := PolicyFor(args.Tool)
	if err != nil {
		return err
	}

	infos := make([]m.RuleInfo, 0, len(baselineRules)+len(policy.Overlay))
	for _, rule := range BaselineRules() {
		infos = append(infos, rule.Info())
	}

	for _, rule := range policy.Overlay {
		info := rule.Info()
		info.Overlay = true
		infos = append(infos, info)
	}

	return w.DisplayRules(ctx, args.Tool, infos, args.Format)
}
