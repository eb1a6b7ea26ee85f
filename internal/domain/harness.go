package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"usdrefactor.dev/pkg/usdrefactor/internal/adapter"
	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

// ErrMalformedFixture is returned when a fixture directory does not hold
// exactly one original and one expected file.
var ErrMalformedFixture = errors.New("malformed fixture")

// MatchAll disables a harness name filter.
const MatchAll = "*"

// HarnessArgs contains the arguments for a fixture run.
type HarnessArgs struct {
	Layout m.Layout
	// Tools and Tests filter fixture groups and cases by name. Empty or
	// containing MatchAll keeps everything.
	Tools   []string
	Tests   []string
	Verbose bool
	// Stderr receives the tools' diagnostics in verbose mode.
	Stderr io.Writer
	// OnStart is called before each case runs.
	OnStart func(fixture m.FixtureCase, cmd m.ToolCommand)
}

// Harness runs the refactoring tools against golden fixtures.
type Harness interface {
	// Discover returns the retained fixture cases sorted by group then name.
	Discover(ctx context.Context, args HarnessArgs) ([]m.FixtureCase, error)
	// Run executes every retained case and returns a report per mismatch.
	// A tool failure aborts the run.
	Run(ctx context.Context, args HarnessArgs) ([]m.FixtureReport, error)
}

type harness struct {
	adapter.SourceFSAdapter
	adapter.ToolRunnerAdapter
	framing DumpFraming
}

// NewHarness creates a Harness with the default dump framing.
func NewHarness(fsAdapter adapter.SourceFSAdapter, runner adapter.ToolRunnerAdapter) Harness {
	return &harness{
		SourceFSAdapter:   fsAdapter,
		ToolRunnerAdapter: runner,
		framing:           DefaultDumpFraming,
	}
}

func (h *harness) Discover(ctx context.Context, args HarnessArgs) ([]m.FixtureCase, error) {
	root := args.Layout.FixturesDir

	_, groups, err := h.ReadDir(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("read fixtures %s: %w", root, err)
	}

	var cases []m.FixtureCase

	for _, group := range groups {
		if !nameFilter(args.Tools).keeps(group) {
			continue
		}

		groupDir := h.JoinPath(ctx, string(root), group)

		_, names, err := h.ReadDir(ctx, groupDir)
		if err != nil {
			return nil, fmt.Errorf("read fixture group %s: %w", groupDir, err)
		}

		for _, name := range names {
			if !nameFilter(args.Tests).keeps(name) {
				continue
			}

			fixture, err := h.resolveCase(ctx, group, name, h.JoinPath(ctx, string(groupDir), name))
			if err != nil {
				return nil, err
			}

			cases = append(cases, fixture)
		}
	}

	sort.SliceStable(cases, func(i, j int) bool {
		if cases[i].Group != cases[j].Group {
			return cases[i].Group < cases[j].Group
		}

		return cases[i].Name < cases[j].Name
	})

	slog.Debug("discovered fixtures", "root", root, "count", len(cases))

	return cases, nil
}

// resolveCase matches the entries of dir to the original and expected roles
// by base name.
func (h *harness) resolveCase(ctx context.Context, group, name string, dir m.Path) (m.FixtureCase, error) {
	files, dirs, err := h.ReadDir(ctx, dir)
	if err != nil {
		return m.FixtureCase{}, fmt.Errorf("read fixture %s/%s: %w", group, name, err)
	}

	fixture := m.FixtureCase{Group: group, Name: name}

	if len(dirs) > 0 {
		return fixture, fmt.Errorf("%w %s: unexpected directory %q", ErrMalformedFixture, fixture.ID(), dirs[0])
	}

	for _, file := range files {
		path := h.JoinPath(ctx, string(dir), file)

		switch role := strings.TrimSuffix(file, filepath.Ext(file)); role {
		case m.RoleOriginal:
			if fixture.Original != "" {
				return fixture, fmt.Errorf("%w %s: more than one %s file", ErrMalformedFixture, fixture.ID(), role)
			}

			fixture.Original = path
		case m.RoleExpected:
			if fixture.Expected != "" {
				return fixture, fmt.Errorf("%w %s: more than one %s file", ErrMalformedFixture, fixture.ID(), role)
			}

			fixture.Expected = path
		default:
			return fixture, fmt.Errorf("%w %s: unexpected file %q", ErrMalformedFixture, fixture.ID(), file)
		}
	}

	if fixture.Original == "" || fixture.Expected == "" {
		return fixture, fmt.Errorf("%w %s: needs both %s and %s files", ErrMalformedFixture, fixture.ID(), m.RoleOriginal, m.RoleExpected)
	}

	return fixture, nil
}

func (h *harness) Run(ctx context.Context, args HarnessArgs) ([]m.FixtureReport, error) {
	cases, err := h.Discover(ctx, args)
	if err != nil {
		return nil, err
	}

	var reports []m.FixtureReport

	for _, fixture := range cases {
		report, failed, err := h.runCase(ctx, args, fixture)
		if err != nil {
			slog.Error("fixture aborted the run", "fixture", fixture.ID(), "error", err)
			return nil, fmt.Errorf("fixture %s: %w", fixture.ID(), err)
		}

		if failed {
			reports = append(reports, report)
		}
	}

	slog.Info("fixture run complete", "cases", len(cases), "failed", len(reports))

	return reports, nil
}

func (h *harness) runCase(ctx context.Context, args HarnessArgs, fixture m.FixtureCase) (m.FixtureReport, bool, error) {
	cmd := DumpCommand(args.Layout, m.ToolID(fixture.Group), fixture.Original)

	var stderr io.Writer
	if args.Verbose {
		stderr = args.Stderr
	}

	if args.OnStart != nil {
		args.OnStart(fixture, cmd)
	}

	slog.Debug("running fixture", "fixture", fixture.ID(), "command", cmd.String())

	dump, err := h.Capture(ctx, cmd, stderr)
	if err != nil {
		return m.FixtureReport{}, false, err
	}

	actual, err := h.rewritten(ctx, fixture, dump)
	if err != nil {
		return m.FixtureReport{}, false, err
	}

	expected, err := h.ReadFile(ctx, fixture.Expected)
	if err != nil {
		return m.FixtureReport{}, false, fmt.Errorf("read expected: %w", err)
	}

	diff, err := LineDiff(actual, string(expected))
	if err != nil {
		return m.FixtureReport{}, false, err
	}

	if diff == "" {
		return m.FixtureReport{}, false, nil
	}

	slog.Debug("fixture mismatch", "fixture", fixture.ID())

	return m.FixtureReport{Case: fixture, Diff: diff}, true, nil
}

// rewritten turns the tool's dump into file content. An empty dump means
// the tool made no change, so the original content is the result.
func (h *harness) rewritten(ctx context.Context, fixture m.FixtureCase, dump []byte) (string, error) {
	if len(dump) > 0 {
		return h.framing.Unwrap(string(dump))
	}

	original, err := h.ReadFile(ctx, fixture.Original)
	if err != nil {
		return "", fmt.Errorf("read original: %w", err)
	}

	return string(original), nil
}

type nameFilter []string

// keeps reports whether name passes the filter. Entries are glob patterns,
// so plain names match only themselves.
func (f nameFilter) keeps(name string) bool {
	if len(f) == 0 || slices.Contains(f, MatchAll) {
		return true
	}

	for _, pattern := range f {
		if pattern == name {
			return true
		}

		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}

	return false
}
