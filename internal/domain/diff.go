package domain

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Labels of the two sides of a fixture diff.
const (
	actualLabel   = "actual"
	expectedLabel = "expected"
	diffContext   = 3
	noEOLMarker   = "\\ No newline at end of file\n"
)

// LineDiff returns the unified diff turning actual into expected, or an
// empty string when both are identical.
func LineDiff(actual, expected string) (string, error) {
	if actual == expected {
		return "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        diffLines(actual),
		B:        diffLines(expected),
		FromFile: actualLabel,
		ToFile:   expectedLabel,
		Context:  diffContext,
	})
	if err != nil {
		return "", fmt.Errorf("diff: %w", err)
	}

	return diff, nil
}

// diffLines splits s after each newline. A last line without one carries
// the diff(1) marker so it still renders on a line of its own.
func diffLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if last := len(lines) - 1; lines[last] == "" {
		return lines[:last]
	}

	lines[len(lines)-1] += "\n" + noEOLMarker

	return lines
}
