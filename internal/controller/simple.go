package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "usdrefactor.dev/pkg/usdrefactor/internal/model"
)

const (
	blockWidth  = 80
	bannerLead  = "====="
	bannerFill  = "="
	blockBorder = "~"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd   *cobra.Command
	title func(string) string
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, title: func(s string) string { return s }}
}

// DisplayFiles prints one selected path per line.
func (s *SimpleUI) DisplayFiles(ctx context.Context, files []m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, file := range files {
		s.printf("%s\n", file)
	}
}

// DisplayDecisions prints every candidate with the rule that excluded it.
func (s *SimpleUI) DisplayDecisions(ctx context.Context, decisions []m.Decision) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, decision := range decisions {
		if decision.Excluded {
			s.printf("- %s (%s)\n", decision.Path, decision.Rule)
			continue
		}

		s.printf("+ %s\n", decision.Path)
	}
}

// DisplayCommand prints the full command line.
func (s *SimpleUI) DisplayCommand(ctx context.Context, cmd m.ToolCommand) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", cmd.String())
}

// DisplayFixtureStart announces a fixture and the command about to run.
func (s *SimpleUI) DisplayFixtureStart(ctx context.Context, fixture m.FixtureCase, cmd m.ToolCommand) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s\n\n%s\n\n", s.title(banner(fmt.Sprintf("Running test '%s'", fixture.ID()))), cmd.String())
}

// DisplayReports prints one delimited block per failing fixture and
// nothing when reports is empty.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.FixtureReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, report := range reports {
		s.printf("%s", s.renderReport(report))
	}
}

func (s *SimpleUI) renderReport(report m.FixtureReport) string {
	var b strings.Builder

	border := strings.Repeat(blockBorder, blockWidth)
	diff := report.Diff

	if !strings.HasSuffix(diff, "\n") {
		diff += "\n"
	}

	b.WriteString("\n")
	b.WriteString(s.title(banner(fmt.Sprintf("Diff for test '%s'", report.Case.ID()))))
	b.WriteString("\n\n")
	b.WriteString(border + "\n")
	b.WriteString(diff)
	b.WriteString(border + "\n")

	return b.String()
}

// banner pads title with '=' to the block width.
func banner(title string) string {
	line := bannerLead + " " + title + " "
	if pad := blockWidth - len(line); pad > 0 {
		line += strings.Repeat(bannerFill, pad)
	}

	return line
}

// DisplayRules prints the rule table of tool.
func (s *SimpleUI) DisplayRules(ctx context.Context, tool m.ToolID, rules []m.RuleInfo, format OutputFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if format == FormatYAML {
		out, err := yaml.Marshal(map[string][]m.RuleInfo{string(tool): rules})
		if err != nil {
			return fmt.Errorf("encode rules: %w", err)
		}

		s.printf("%s", out)

		return nil
	}

	s.printf("%s", renderRulesTable(rules))

	return nil
}

func renderRulesTable(rules []m.RuleInfo) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Rule", "Kind", "Directory", "Match", "Layer"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, rule := range rules {
		match := strings.Join(rule.Values, ", ")
		if rule.Pattern != "" {
			match = rule.Pattern
		}

		layer := "baseline"
		if rule.Overlay {
			layer = "overlay"
		}

		table.Append([]string{rule.Name, rule.Kind, strings.Join(rule.Marker, "/"), match, layer})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Rules %d", len(rules)), "", "", "", ""})
	table.Render()

	return tableBuffer.String()
}

// DisplayPatchSummary reports how many database entries were rewritten.
func (s *SimpleUI) DisplayPatchSummary(ctx context.Context, database m.Path, entries, patched int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s: patched %d of %d entries\n", database, patched, entries)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
